package seeders

import "efiling-system/pkg/constants"

var roleData = []struct {
	Name    string
	Code    string
	IsAdmin bool
}{
	{Name: "System Administrator", Code: "ADMIN", IsAdmin: true},
	{Name: "Chief Executive Officer", Code: "CEO"},
	{Name: "Chief Operating Officer", Code: "COO"},
	{Name: "Chief Financial Officer", Code: "CFO-HQ"},
	{Name: "Chief Engineer North", Code: "CE-NORTH"},
	{Name: "Chief Engineer South", Code: "CE-SOUTH"},
	{Name: "Superintending Engineer North", Code: "SE-NORTH"},
	{Name: "Superintending Engineer South", Code: "SE-SOUTH"},
	{Name: "Executive Engineer Zone 1", Code: "EE-Z1"},
	{Name: "Executive Engineer Zone 2", Code: "EE-Z2"},
	{Name: "Executive Engineer (XEN) Zone 3", Code: "XEN-Z3"},
	{Name: "Office Clerk", Code: "CLERK"},
}

var departmentData = []struct {
	Name string
	Code string
}{
	{Name: "Public Works", Code: "PW"},
	{Name: "Water Supply", Code: "WS"},
	{Name: "Electrical", Code: "EL"},
	{Name: "Town Planning", Code: "TP"},
	{Name: "Accounts", Code: "AC"},
}

var zoneData = []struct {
	Name string
	Code string
}{
	{Name: "North Zone", Code: "NZ"},
	{Name: "South Zone", Code: "SZ"},
	{Name: "Central Zone", Code: "CZ"},
}

// Default SLA windows; department-specific rows can override them later.
var slaMatrixData = []struct {
	Priority        string
	ResolutionHours int
}{
	{Priority: constants.PriorityUrgent, ResolutionHours: 24},
	{Priority: constants.PriorityHigh, ResolutionHours: 72},
	{Priority: constants.PriorityNormal, ResolutionHours: 168},
}
