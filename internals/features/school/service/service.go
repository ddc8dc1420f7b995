// file: internals/features/school/service/service.go
package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"schoolku_backend/internals/identity"
	"schoolku_backend/internals/revalidate"
)

var validate = validator.New()

// SchoolService wires the mutation handlers to their three dependencies:
// the record store, the identity provider that owns teacher/student
// accounts, and the view revalidator stamped after every successful
// mutation.
type SchoolService struct {
	Store    Store
	Identity identity.Provider
	Reval    revalidate.Revalidator
}

func NewSchoolService(store Store, idp identity.Provider, rv revalidate.Revalidator) *SchoolService {
	return &SchoolService{
		Store:    store,
		Identity: idp,
		Reval:    rv,
	}
}

func (s *SchoolService) revalidateList(entity string) {
	s.Reval.Revalidate("/list/" + entity)
}

func (s *SchoolService) revalidateDetail(entity string, id any) {
	s.Reval.Revalidate(fmt.Sprintf("/list/%s/%v", entity, id))
}
