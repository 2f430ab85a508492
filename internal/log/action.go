package log

type Action = string

const (
	CreateBook   Action = "CreateBook"
	GetBook             = "GetBook"
	UpdateBook          = "UpdateBook"
	DeleteBook          = "DeleteBook"
	FindBooks           = "FindBooks"
	GetBookLoans        = "GetBookLoans"
	CreateLoan          = "CreateLoan"
	GetLoan             = "GetLoan"
	ReturnLoan          = "ReturnLoan"
	FindLoans           = "FindLoans"
)
