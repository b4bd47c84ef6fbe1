package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/handler"
	"github.com/bookhaven/library-service/library/internal/model"
	"github.com/bookhaven/library-service/pkg/validate"

	service_mocks "github.com/bookhaven/library-service/library/internal/handler/mocks"
)

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		page, size string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookFilter{}, 1, 20).
					Return(model.ListBooks{
						Paging: model.Paging{
							Page:          1,
							PageSize:      20,
							TotalElements: 1,
						},
						Items: []model.Book{
							{
								BookUid:     "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
								Title:       "The Go Programming Language",
								Author:      "Alan Donovan",
								ISBN:        "9780134190440",
								IsAvailable: true,
							},
						},
					}, nil)
			},
			input: input{page: "1", size: "20"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":20,"totalElements":1,"items":[{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","title":"The Go Programming Language","author":"Alan Donovan","isbn":"9780134190440","isAvailable":true}]}`,
			},
			wantErr: false,
		},
		{
			name:         "err. page invalid",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{page: "one", size: "20"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookFilter{}, 1, 20).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			input: input{page: "1", size: "20"},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books", h.ListBooks)

			r := httptest.NewRequest(
				http.MethodGet, fmt.Sprintf("/books?page=%s&size=%s", tt.input.page, tt.input.size), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateLoan(t *testing.T) {
	t.Parallel()
	const (
		bookUid   = "9a234f2f-0d21-4a0a-9e4e-7f3c69a1b111"
		memberUid = "1bfdd28d-4f35-4c5a-9c32-9ab0f2b0c222"
		loanUid   = "c3b4a640-74a9-4b6a-8a2c-0c7a6d94d333"
	)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	loanDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(context.Background(), model.CreateLoanRequest{
						BookUid:   bookUid,
						MemberUid: memberUid,
					}).
					Return(model.Loan{
						LoanUid:    loanUid,
						BookUid:    bookUid,
						MemberUid:  memberUid,
						LoanDate:   loanDate,
						ReturnDate: loanDate.AddDate(0, 0, 14),
						FineAmount: decimal.Zero,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: fmt.Sprintf(`{"loanUid":%q,"bookUid":%q,"memberUid":%q,"loanDate":"2026-08-01T00:00:00Z","returnDate":"2026-08-15T00:00:00Z","returned":false,"fineAmount":"0"}`, loanUid, bookUid, memberUid),
			},
			wantErr: false,
		},
		{
			name: "err. book unavailable",
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(context.Background(), gomock.Any()).
					Return(model.Loan{}, errs.ErrBookUnavailable)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is not available for loan"}`,
			},
			wantErr: true,
		},
		{
			name: "err. member ineligible",
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(context.Background(), gomock.Any()).
					Return(model.Loan{}, errors.Wrap(errs.ErrIneligible, "maximum loan limit (5) reached"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"maximum loan limit (5) reached: member is not eligible to borrow"}`,
			},
			wantErr: true,
		},
		{
			name: "err. book not found",
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoan(context.Background(), gomock.Any()).
					Return(model.Loan{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans", h.CreateLoan)

			r := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	const loanUid = "c3b4a640-74a9-4b6a-8a2c-0c7a6d94d333"
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	loanDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	actual := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok. overdue with fine",
			body: `{"actualReturnDate":"2026-08-18"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnBook(context.Background(), loanUid, gomock.Any()).
					Return(model.Loan{
						LoanUid:          loanUid,
						BookUid:          "9a234f2f-0d21-4a0a-9e4e-7f3c69a1b111",
						MemberUid:        "1bfdd28d-4f35-4c5a-9c32-9ab0f2b0c222",
						LoanDate:         loanDate,
						ReturnDate:       loanDate.AddDate(0, 0, 14),
						Returned:         true,
						ActualReturnDate: &actual,
						FineAmount:       decimal.NewFromInt(3),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"loanUid":"c3b4a640-74a9-4b6a-8a2c-0c7a6d94d333","bookUid":"9a234f2f-0d21-4a0a-9e4e-7f3c69a1b111","memberUid":"1bfdd28d-4f35-4c5a-9c32-9ab0f2b0c222","loanDate":"2026-08-01T00:00:00Z","returnDate":"2026-08-15T00:00:00Z","returned":true,"actualReturnDate":"2026-08-18T00:00:00Z","fineAmount":"3"}`,
			},
			wantErr: false,
		},
		{
			name: "err. already returned",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnBook(context.Background(), loanUid, gomock.Any()).
					Return(model.Loan{}, errs.ErrAlreadyReturned)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book already returned"}`,
			},
			wantErr: true,
		},
		{
			name: "err. loan not found",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ReturnBook(context.Background(), loanUid, gomock.Any()).
					Return(model.Loan{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans/:loanUid/return", h.ReturnBook)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/loans/%s/return", loanUid), strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	const (
		bookUid        = "9a234f2f-0d21-4a0a-9e4e-7f3c69a1b111"
		memberUid      = "1bfdd28d-4f35-4c5a-9c32-9ab0f2b0c222"
		reservationUid = "7e1d9b6a-44f1-49a8-b7e0-2b1d4a9fc444"
	)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	reserveDate := time.Date(2026, 8, 20, 12, 30, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateReservation(context.Background(), model.CreateReservationRequest{
						BookUid:   bookUid,
						MemberUid: memberUid,
					}).
					Return(model.Reservation{
						ReservationUid: reservationUid,
						BookUid:        bookUid,
						MemberUid:      memberUid,
						ReserveDate:    reserveDate,
						Status:         model.ReservationPending,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: fmt.Sprintf(`{"reservationUid":%q,"bookUid":%q,"memberUid":%q,"reserveDate":"2026-08-20T12:30:00Z","status":"Pending"}`, reservationUid, bookUid, memberUid),
			},
			wantErr: false,
		},
		{
			name: "err. book on shelf",
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateReservation(context.Background(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrBookAvailable)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is currently available, no reservation needed"}`,
			},
			wantErr: true,
		},
		{
			name: "err. duplicate reservation",
			body: fmt.Sprintf(`{"bookUid":%q,"memberUid":%q}`, bookUid, memberUid),
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateReservation(context.Background(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrDuplicateReservation)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"member already has a reservation for this book"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/reservations", h.CreateReservation)

			r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	const reservationUid = "7e1d9b6a-44f1-49a8-b7e0-2b1d4a9fc444"
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CancelReservation(context.Background(), reservationUid).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: ``,
			},
			wantErr: false,
		},
		{
			name: "err. terminal state",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CancelReservation(context.Background(), reservationUid).
					Return(errors.Wrap(errs.ErrTerminalState, "cannot cancel Expired reservation"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"cannot cancel Expired reservation: reservation is already in a terminal state"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CancelReservation(context.Background(), reservationUid).
					Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/reservations/:reservationUid/cancel", h.CancelReservation)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/reservations/%s/cancel", reservationUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CanBorrow(t *testing.T) {
	t.Parallel()
	const memberUid = "1bfdd28d-4f35-4c5a-9c32-9ab0f2b0c222"
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok. eligible",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CanBorrow(context.Background(), memberUid).
					Return(true, "can borrow", nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"canBorrow":true,"reason":"can borrow"}`,
			},
			wantErr: false,
		},
		{
			name: "ok. at loan limit",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CanBorrow(context.Background(), memberUid).
					Return(false, "maximum loan limit (5) reached", nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"canBorrow":false,"reason":"maximum loan limit (5) reached"}`,
			},
			wantErr: false,
		},
		{
			name: "err. member not found",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CanBorrow(context.Background(), memberUid).
					Return(false, "", errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/members/:memberUid/can-borrow", h.CanBorrow)

			r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/members/%s/can-borrow", memberUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	const bookUid = "9a234f2f-0d21-4a0a-9e4e-7f3c69a1b111"
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					DeleteBook(context.Background(), bookUid).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: ``,
			},
			wantErr: false,
		},
		{
			name: "err. active loan",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					DeleteBook(context.Background(), bookUid).
					Return(errs.ErrHasActiveLoans)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"entity has active loans"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.DELETE("/books/:bookUid", h.DeleteBook)

			r := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/books/%s", bookUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_OverdueSweep(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					OverdueSweep(context.Background()).
					Return(4, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"notices":4}`,
			},
			wantErr: false,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					OverdueSweep(context.Background()).
					Return(0, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/jobs/overdue-sweep", h.OverdueSweep)

			r := httptest.NewRequest(http.MethodPost, "/jobs/overdue-sweep", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
