package service

import (
	"github.com/bornholm/vitrine/internal/core/collection"
	"github.com/bornholm/vitrine/internal/core/model"
)

var InternAccessors = collection.Accessors[model.Intern]{
	ID:      func(r model.Intern) string { return r.ID },
	Display: func(r model.Intern) string { return r.Name },
	Search:  func(r model.Intern) []string { return []string{r.Email, r.School, r.Track} },
}

var EmployeeAccessors = collection.Accessors[model.Employee]{
	ID:      func(r model.Employee) string { return r.ID },
	Display: func(r model.Employee) string { return r.Name },
	Search:  func(r model.Employee) []string { return []string{r.Email, r.Role, r.Department} },
}

var ApplicantAccessors = collection.Accessors[model.Applicant]{
	ID:      func(r model.Applicant) string { return r.ID },
	Display: func(r model.Applicant) string { return r.Name },
	Search:  func(r model.Applicant) []string { return []string{r.Email, r.Position} },
}

var NotificationAccessors = collection.Accessors[model.Notification]{
	ID:      func(r model.Notification) string { return r.ID },
	Display: func(r model.Notification) string { return r.Title },
	Search:  func(r model.Notification) []string { return []string{r.Body} },
}
