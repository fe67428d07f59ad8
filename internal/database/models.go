package database

import "github.com/jackc/pgx/v5/pgtype"

// User is a back-office login. Passwords are stored as entered; see the
// seed command for the default credential.
type User struct {
	ID       int64
	Username string
	Password string
}

// Customer of the print shop. Contact is a legacy column kept nullable for
// rows created before the mobile/email/address split.
type Customer struct {
	ID      int64
	Name    string
	Contact pgtype.Text
	Mobile  string
	Email   string
	Address string
}

// Order is one requested print service with its own price and status.
// CustomerID carries no foreign key: deleting a customer leaves their
// orders behind.
type Order struct {
	ID          int64
	CustomerID  int64
	Service     string
	OrderDate   string
	Amount      pgtype.Numeric
	PaymentMode string
	Status      string
}

// Payment tracks settlement of an order's amount. Paid stays 0/1.
type Payment struct {
	ID          int64
	OrderID     int64
	Amount      pgtype.Numeric
	Paid        int32
	PaymentDate string
}

type Employee struct {
	ID      int64
	Name    string
	Role    string
	Mobile  string
	Email   string
	Address string
}

type Expense struct {
	ID          int64
	Amount      pgtype.Numeric
	Description string
	Date        string
}

// CompanySettings is the single-row configuration record shown on receipts.
type CompanySettings struct {
	Name    string
	Address string
	Phone   string
	Logo    string
}
