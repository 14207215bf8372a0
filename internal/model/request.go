package model

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Publisher     string `json:"publisher"`
	Year          int    `json:"year" validate:"gte=0"`
	ISBN          string `json:"isbn" validate:"required"`
	Category      string `json:"category"`
	Stock         int    `json:"stock" validate:"gte=0"`
	ShelfLocation string `json:"shelfLocation"`
}

type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Publisher     *string `json:"publisher"`
	Year          *int    `json:"year" validate:"omitempty,gte=0"`
	ISBN          *string `json:"isbn"`
	Category      *string `json:"category"`
	Stock         *int    `json:"stock" validate:"omitempty,gte=0"`
	ShelfLocation *string `json:"shelfLocation"`
}

type CreateMemberRequest struct {
	FullName     string       `json:"fullName" validate:"required"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email" validate:"required,email"`
	RegisteredAt Date         `json:"registeredAt"`
	Status       MemberStatus `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateMemberRequest struct {
	FullName *string       `json:"fullName"`
	Address  *string       `json:"address"`
	Phone    *string       `json:"phone"`
	Email    *string       `json:"email" validate:"omitempty,email"`
	Status   *MemberStatus `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type CreateStaffRequest struct {
	Name     string        `json:"name" validate:"required"`
	Position StaffPosition `json:"position" validate:"required,oneof=ASSISTANT_LIBRARIAN LIBRARIAN ADMINISTRATIVE_OFFICER"`
	Phone    string        `json:"phone"`
	Address  string        `json:"address"`
}

type UpdateStaffRequest struct {
	Name     *string        `json:"name"`
	Position *StaffPosition `json:"position" validate:"omitempty,oneof=ASSISTANT_LIBRARIAN LIBRARIAN ADMINISTRATIVE_OFFICER"`
	Phone    *string        `json:"phone"`
	Address  *string        `json:"address"`
}

type CreateLoanRequest struct {
	MemberID          string `json:"memberId" validate:"required"`
	BookID            string `json:"bookId" validate:"required"`
	StaffID           string `json:"staffId" validate:"required"`
	BorrowDate        Date   `json:"borrowDate" validate:"required"`
	PlannedReturnDate Date   `json:"plannedReturnDate" validate:"required"`
	Notes             string `json:"notes"`
}

type ReturnLoanRequest struct {
	Date Date `json:"date" validate:"required"`
}

type LoanFilter struct {
	MemberID       string
	BookID         string
	Status         LoanStatus
	IncludeDeleted bool
}
