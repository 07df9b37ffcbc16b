package models

import "fmt"

// Employee is one person from the HR directory. Email identifies the record
// and is the sort key.
type Employee struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
}

// Row renders the employee the way both the list view and the export show it.
func (e Employee) Row() string {
	return fmt.Sprintf("%s;%s;%s", e.FirstName, e.Surname, e.Email)
}

// EmployeeListResponse is the envelope returned by the people endpoint.
type EmployeeListResponse struct {
	Employees []Employee `json:"employees"`
}
