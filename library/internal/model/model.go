package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar date (no time-of-day) serialized as "2006-01-02".
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type Book struct {
	ID          int        `json:"-" db:"id"`
	BookUid     string     `json:"bookUid" db:"book_uid"`
	Title       string     `json:"title" db:"title"`
	Author      string     `json:"author" db:"author"`
	ISBN        string     `json:"isbn,omitempty" db:"isbn"`
	PublishDate *time.Time `json:"publishDate,omitempty" db:"publish_date"`
	Description string     `json:"description,omitempty" db:"description"`
	Category    string     `json:"category,omitempty" db:"category"`
	IsAvailable bool       `json:"isAvailable" db:"is_available"`
}

type MemberStatus string

const (
	MemberActive    MemberStatus = "Active"
	MemberSuspended MemberStatus = "Suspended"
	MemberClosed    MemberStatus = "Closed"
)

type Member struct {
	ID           int          `json:"-" db:"id"`
	MemberUid    string       `json:"memberUid" db:"member_uid"`
	Name         string       `json:"name" db:"name"`
	MembershipID string       `json:"membershipId" db:"membership_id"`
	Email        string       `json:"email" db:"email"`
	Phone        string       `json:"phone,omitempty" db:"phone"`
	Address      string       `json:"address,omitempty" db:"address"`
	Status       MemberStatus `json:"status" db:"status"`
	JoinDate     time.Time    `json:"joinDate" db:"join_date"`
}

type Loan struct {
	ID               int             `json:"-" db:"id"`
	LoanUid          string          `json:"loanUid" db:"loan_uid"`
	BookID           int             `json:"-" db:"book_id"`
	BookUid          string          `json:"bookUid" db:"book_uid"`
	MemberID         int             `json:"-" db:"member_id"`
	MemberUid        string          `json:"memberUid" db:"member_uid"`
	LoanDate         time.Time       `json:"loanDate" db:"loan_date"`
	ReturnDate       time.Time       `json:"returnDate" db:"return_date"`
	Returned         bool            `json:"returned" db:"returned"`
	ActualReturnDate *time.Time      `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	FineAmount       decimal.Decimal `json:"fineAmount" db:"fine_amount"`
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationReady     ReservationStatus = "Ready"
	ReservationFulfilled ReservationStatus = "Fulfilled"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationExpired   ReservationStatus = "Expired"
)

// Terminal reports whether the status permits no further transitions.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case ReservationFulfilled, ReservationCancelled, ReservationExpired:
		return true
	}
	return false
}

type Reservation struct {
	ID             int               `json:"-" db:"id"`
	ReservationUid string            `json:"reservationUid" db:"reservation_uid"`
	BookID         int               `json:"-" db:"book_id"`
	BookUid        string            `json:"bookUid" db:"book_uid"`
	MemberID       int               `json:"-" db:"member_id"`
	MemberUid      string            `json:"memberUid" db:"member_uid"`
	ReserveDate    time.Time         `json:"reserveDate" db:"reserve_date"`
	Status         ReservationStatus `json:"status" db:"status"`
	ExpiryDate     *time.Time        `json:"expiryDate,omitempty" db:"expiry_date"`
}

// QueueEntry is a reservation joined with the member and book it references,
// enough to promote it and notify the member.
type QueueEntry struct {
	Reservation
	MemberName  string `db:"member_name"`
	MemberEmail string `db:"member_email"`
	BookTitle   string `db:"book_title"`
	BookAuthor  string `db:"book_author"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging
	Items []Book `json:"items"`
}

type ListMembers struct {
	Paging
	Items []Member `json:"items"`
}

type BookFilter struct {
	Category  string
	Available *bool
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	ISBN        string `json:"isbn" validate:"omitempty,len=10|len=13"`
	PublishDate *Date  `json:"publishDate"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type UpdateBookRequest struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	ISBN        *string `json:"isbn" validate:"omitempty,len=10|len=13"`
	PublishDate *Date   `json:"publishDate"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type CreateMemberRequest struct {
	Name         string `json:"name" validate:"required"`
	MembershipID string `json:"membershipId" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

type UpdateMemberRequest struct {
	Name    *string       `json:"name"`
	Email   *string       `json:"email" validate:"omitempty,email"`
	Phone   *string       `json:"phone"`
	Address *string       `json:"address"`
	Status  *MemberStatus `json:"status" validate:"omitempty,oneof=Active Suspended Closed"`
}

type CreateLoanRequest struct {
	BookUid    string `json:"bookUid" validate:"required"`
	MemberUid  string `json:"memberUid" validate:"required"`
	ReturnDate *Date  `json:"returnDate"`
}

type ReturnBookRequest struct {
	ActualReturnDate *Date `json:"actualReturnDate"`
}

type ExtendLoanRequest struct {
	NewReturnDate Date `json:"newReturnDate" validate:"required"`
}

type CreateReservationRequest struct {
	BookUid   string `json:"bookUid" validate:"required"`
	MemberUid string `json:"memberUid" validate:"required"`
}

// LoanSummary is the active-loan fragment shown on a book detail.
type LoanSummary struct {
	LoanUid    string    `json:"loanUid" db:"loan_uid"`
	MemberUid  string    `json:"memberUid" db:"member_uid"`
	MemberName string    `json:"memberName" db:"member_name"`
	ReturnDate time.Time `json:"returnDate" db:"return_date"`
}

type BookDetail struct {
	Book             Book         `json:"book"`
	CurrentLoan      *LoanSummary `json:"currentLoan,omitempty"`
	ReservationCount int          `json:"reservationCount"`
}

type MemberDetail struct {
	Member       Member                 `json:"member"`
	ActiveLoans  []Loan                 `json:"activeLoans"`
	LoanHistory  []Loan                 `json:"loanHistory"`
	Reservations []MemberReservationRow `json:"reservations"`
}

type ActiveLoanRow struct {
	LoanUid     string    `json:"loanUid" db:"loan_uid"`
	BookUid     string    `json:"bookUid" db:"book_uid"`
	BookTitle   string    `json:"bookTitle" db:"book_title"`
	BookAuthor  string    `json:"bookAuthor" db:"book_author"`
	MemberUid   string    `json:"memberUid" db:"member_uid"`
	MemberName  string    `json:"memberName" db:"member_name"`
	LoanDate    time.Time `json:"loanDate" db:"loan_date"`
	ReturnDate  time.Time `json:"returnDate" db:"return_date"`
	IsOverdue   bool      `json:"isOverdue" db:"is_overdue"`
	DaysOverdue int       `json:"daysOverdue" db:"days_overdue"`
}

type OverdueLoanRow struct {
	LoanUid     string    `json:"loanUid" db:"loan_uid"`
	BookUid     string    `json:"bookUid" db:"book_uid"`
	BookTitle   string    `json:"bookTitle" db:"book_title"`
	BookAuthor  string    `json:"bookAuthor" db:"book_author"`
	MemberUid   string    `json:"memberUid" db:"member_uid"`
	MemberName  string    `json:"memberName" db:"member_name"`
	MemberEmail string    `json:"memberEmail" db:"member_email"`
	LoanDate    time.Time `json:"loanDate" db:"loan_date"`
	ReturnDate  time.Time `json:"returnDate" db:"return_date"`
	DaysOverdue int       `json:"daysOverdue" db:"days_overdue"`
}

type MemberReservationRow struct {
	ReservationUid string            `json:"reservationUid" db:"reservation_uid"`
	BookUid        string            `json:"bookUid" db:"book_uid"`
	BookTitle      string            `json:"bookTitle" db:"book_title"`
	BookAuthor     string            `json:"bookAuthor" db:"book_author"`
	ReserveDate    time.Time         `json:"reserveDate" db:"reserve_date"`
	Status         ReservationStatus `json:"status" db:"status"`
	ExpiryDate     *time.Time        `json:"expiryDate,omitempty" db:"expiry_date"`
	QueuePosition  int               `json:"queuePosition" db:"queue_position"`
}

type BookReservationRow struct {
	ReservationUid string            `json:"reservationUid" db:"reservation_uid"`
	MemberUid      string            `json:"memberUid" db:"member_uid"`
	MemberName     string            `json:"memberName" db:"member_name"`
	MemberEmail    string            `json:"memberEmail" db:"member_email"`
	ReserveDate    time.Time         `json:"reserveDate" db:"reserve_date"`
	Status         ReservationStatus `json:"status" db:"status"`
	ExpiryDate     *time.Time        `json:"expiryDate,omitempty" db:"expiry_date"`
}

type ReminderRow struct {
	ReservationUid string    `db:"reservation_uid"`
	BookTitle      string    `db:"book_title"`
	BookAuthor     string    `db:"book_author"`
	MemberName     string    `db:"member_name"`
	MemberEmail    string    `db:"member_email"`
	ExpiryDate     time.Time `db:"expiry_date"`
}

type LoanReportStatus string

const (
	LoanStatusActive  LoanReportStatus = "Active"
	LoanStatusDueSoon LoanReportStatus = "Due Soon"
	LoanStatusOverdue LoanReportStatus = "Overdue"
)

type LoanReportRow struct {
	ActiveLoanRow
	MemberEmail   string           `json:"memberEmail" db:"member_email"`
	MemberPhone   string           `json:"memberPhone" db:"member_phone"`
	DaysRemaining int              `json:"daysRemaining" db:"days_remaining"`
	Status        LoanReportStatus `json:"status" db:"status"`
}

type ActiveLoansStats struct {
	TotalActiveLoans int `json:"totalActiveLoans"`
	OverdueLoans     int `json:"overdueLoans"`
	DueSoonLoans     int `json:"dueSoonLoans"`
	ActiveLoans      int `json:"activeLoans"`
}

type ActiveLoansReport struct {
	Loans      []LoanReportRow  `json:"loans"`
	Statistics ActiveLoansStats `json:"statistics"`
}

type OverdueReportRow struct {
	OverdueLoanRow
	MemberPhone   string          `json:"memberPhone" db:"member_phone"`
	EstimatedFine decimal.Decimal `json:"estimatedFine" db:"estimated_fine"`
}

type OverdueReport struct {
	OverdueLoans []OverdueReportRow `json:"overdueLoans"`
	Statistics   struct {
		TotalOverdue        int             `json:"totalOverdue"`
		TotalEstimatedFines decimal.Decimal `json:"totalEstimatedFines"`
	} `json:"statistics"`
}

type PopularBookRow struct {
	BookUid          string `json:"bookUid" db:"book_uid"`
	Title            string `json:"title" db:"title"`
	Author           string `json:"author" db:"author"`
	Category         string `json:"category" db:"category"`
	LoanCount        int    `json:"loanCount" db:"loan_count"`
	CurrentLoans     int    `json:"currentLoans" db:"current_loans"`
	ReservationCount int    `json:"reservationCount" db:"reservation_count"`
}

type MemberActivityRow struct {
	MemberUid    string     `json:"memberUid" db:"member_uid"`
	Name         string     `json:"name" db:"name"`
	MembershipID string     `json:"membershipId" db:"membership_id"`
	Email        string     `json:"email" db:"email"`
	TotalLoans   int        `json:"totalLoans" db:"total_loans"`
	ActiveLoans  int        `json:"activeLoans" db:"active_loans"`
	OverdueLoans int        `json:"overdueLoans" db:"overdue_loans"`
	LastLoanDate *time.Time `json:"lastLoanDate,omitempty" db:"last_loan_date"`
}

type LibraryStatistics struct {
	TotalBooks          int `json:"totalBooks" db:"total_books"`
	AvailableBooks      int `json:"availableBooks" db:"available_books"`
	BooksOnLoan         int `json:"booksOnLoan" db:"books_on_loan"`
	TotalMembers        int `json:"totalMembers" db:"total_members"`
	ActiveMembers       int `json:"activeMembers" db:"active_members"`
	TotalLoans          int `json:"totalLoans" db:"total_loans"`
	ActiveLoans         int `json:"activeLoans" db:"active_loans"`
	OverdueLoans        int `json:"overdueLoans" db:"overdue_loans"`
	PendingReservations int `json:"pendingReservations" db:"pending_reservations"`
	ReadyReservations   int `json:"readyReservations" db:"ready_reservations"`
}
