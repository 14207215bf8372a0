package model

import (
	"encoding/json"
	"time"
)

// Source table names as they appear in trash entries.
const (
	TableBooks   = "books"
	TableMembers = "members"
	TableStaff   = "staff"
	TableLoans   = "loans"
)

type LoanStatus string

const (
	StatusBorrowed LoanStatus = "BORROWED"
	StatusReturned LoanStatus = "RETURNED"
	StatusOverdue  LoanStatus = "OVERDUE"
)

type MemberStatus string

const (
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
)

type StaffPosition string

const (
	PositionAssistantLibrarian    StaffPosition = "ASSISTANT_LIBRARIAN"
	PositionLibrarian             StaffPosition = "LIBRARIAN"
	PositionAdministrativeOfficer StaffPosition = "ADMINISTRATIVE_OFFICER"
)

type Book struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	Publisher     string    `json:"publisher" db:"publisher"`
	Year          int       `json:"year" db:"year"`
	ISBN          string    `json:"isbn" db:"isbn"`
	Category      string    `json:"category" db:"category"`
	Stock         int       `json:"stock" db:"stock"`
	ShelfLocation string    `json:"shelfLocation" db:"shelf_location"`
	IsDeleted     bool      `json:"isDeleted" db:"is_deleted"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// BookCirculation is the catalog view of a book: TotalCopies is the
// shelf stock plus every copy currently out on loan. It is computed per
// query, never stored.
type BookCirculation struct {
	Book
	TotalCopies int `json:"totalCopies" db:"total_copies"`
}

type Member struct {
	ID           string       `json:"id" db:"id"`
	FullName     string       `json:"fullName" db:"full_name"`
	MemberNumber string       `json:"memberNumber" db:"member_number"`
	Address      string       `json:"address" db:"address"`
	Phone        string       `json:"phone" db:"phone"`
	Email        string       `json:"email" db:"email"`
	RegisteredAt Date         `json:"registeredAt" db:"registered_at"`
	Status       MemberStatus `json:"status" db:"status"`
	IsDeleted    bool         `json:"isDeleted" db:"is_deleted"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

type Staff struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Position  StaffPosition `json:"position" db:"position"`
	Phone     string        `json:"phone" db:"phone"`
	Address   string        `json:"address" db:"address"`
	IsDeleted bool          `json:"isDeleted" db:"is_deleted"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

type Loan struct {
	ID                string     `json:"id" db:"id"`
	MemberID          string     `json:"memberId" db:"member_id"`
	BookID            string     `json:"bookId" db:"book_id"`
	StaffID           string     `json:"staffId" db:"staff_id"`
	BorrowDate        Date       `json:"borrowDate" db:"borrow_date"`
	PlannedReturnDate Date       `json:"plannedReturnDate" db:"planned_return_date"`
	ActualReturnDate  *Date      `json:"actualReturnDate" db:"actual_return_date"`
	Status            LoanStatus `json:"status" db:"status"`
	Fine              int64      `json:"fine" db:"fine"`
	Notes             string     `json:"notes" db:"notes"`
	IsDeleted         bool       `json:"isDeleted" db:"is_deleted"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
}

// Returned reports whether the loan is closed. Status and the actual
// return date move together; this is the single place that reads both.
func (l Loan) Returned() bool {
	return l.Status == StatusReturned && l.ActualReturnDate != nil
}

type TrashEntry struct {
	ID          string          `json:"id" db:"id"`
	SourceTable string          `json:"sourceTable" db:"source_table"`
	RecordID    string          `json:"recordId" db:"record_id"`
	Snapshot    json.RawMessage `json:"snapshot" db:"snapshot"`
	DeletedBy   string          `json:"deletedBy" db:"deleted_by"`
	DeletedAt   time.Time       `json:"deletedAt" db:"deleted_at"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}
