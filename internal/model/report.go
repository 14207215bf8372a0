package model

type DateRange struct {
	From Date
	To   Date
}

type PopularBook struct {
	BookID    string `json:"bookId" db:"book_id"`
	Title     string `json:"title" db:"title"`
	Author    string `json:"author" db:"author"`
	Category  string `json:"category" db:"category"`
	LoanCount int    `json:"loanCount" db:"loan_count"`
}

type MemberActivity struct {
	MemberID         string `json:"memberId" db:"member_id"`
	FullName         string `json:"fullName" db:"full_name"`
	MemberNumber     string `json:"memberNumber" db:"member_number"`
	Email            string `json:"email" db:"email"`
	CompletedLoans   int    `json:"completedLoans" db:"completed_loans"`
	OutstandingLoans int    `json:"outstandingLoans" db:"outstanding_loans"`
}

type MonthlyCount struct {
	Month string `json:"month" db:"month"`
	Loans int    `json:"loans" db:"loans"`
}

type OverdueLoan struct {
	LoanID            string `json:"loanId" db:"loan_id"`
	MemberID          string `json:"memberId" db:"member_id"`
	MemberName        string `json:"memberName" db:"member_name"`
	BookID            string `json:"bookId" db:"book_id"`
	BookTitle         string `json:"bookTitle" db:"book_title"`
	BorrowDate        Date   `json:"borrowDate" db:"borrow_date"`
	PlannedReturnDate Date   `json:"plannedReturnDate" db:"planned_return_date"`
	ActualReturnDate  *Date  `json:"actualReturnDate" db:"actual_return_date"`
	DaysLate          int    `json:"daysLate" db:"days_late"`
	Fine              int64  `json:"fine" db:"fine"`
}

type Stats struct {
	TotalBooks   int   `json:"totalBooks"`
	TotalMembers int   `json:"totalMembers"`
	LoansToday   int   `json:"loansToday"`
	OverdueLoans int   `json:"overdueLoans"`
	TotalFines   int64 `json:"totalFines"`
}

type LoanEventType string

const (
	LoanCreated  LoanEventType = "loan.created"
	LoanReturned LoanEventType = "loan.returned"
	LoanOverdue  LoanEventType = "loan.overdue"
)

// LoanEvent is the message published to the loan event topic on every
// lifecycle transition. EventID is assigned at publish time so
// consumers can deduplicate redeliveries.
type LoanEvent struct {
	EventID  string        `json:"eventId"`
	Type     LoanEventType `json:"type"`
	LoanID   string        `json:"loanId"`
	MemberID string        `json:"memberId"`
	BookID   string        `json:"bookId"`
	Fine     int64         `json:"fine"`
	Date     Date          `json:"date"`
}
