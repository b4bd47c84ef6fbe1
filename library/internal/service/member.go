package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/bookhaven/library-service/library/internal/errs"
	"github.com/bookhaven/library-service/library/internal/model"
)

var (
	membershipIDRe = regexp.MustCompile(`^LIB-\d{4}-\d{3}$`)
	emailRe        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitRe     = regexp.MustCompile(`\D`)
)

func validateMemberFields(membershipID, email, phone string) error {
	if !membershipIDRe.MatchString(membershipID) {
		return errors.Wrap(errs.ErrValidation, "membership id must follow format LIB-YYYY-NNN (e.g. LIB-2025-001)")
	}
	if !emailRe.MatchString(email) {
		return errors.Wrap(errs.ErrValidation, "invalid email address")
	}
	if phone != "" && len(nonDigitRe.ReplaceAllString(phone, "")) < 10 {
		return errors.Wrap(errs.ErrValidation, "phone number must be at least 10 digits long")
	}
	return nil
}

func (s *Service) CreateMember(ctx context.Context, req model.CreateMemberRequest) (model.Member, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateMemberFields(req.MembershipID, email, req.Phone); err != nil {
		return model.Member{}, err
	}
	member := model.Member{
		MemberUid:    uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		MembershipID: req.MembershipID,
		Email:        email,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       model.MemberActive,
		JoinDate:     s.today(),
	}
	return s.repo.CreateMember(ctx, member)
}

// GetMember returns the member with active loans, recent loan history and
// open reservations.
func (s *Service) GetMember(ctx context.Context, memberUid string) (model.MemberDetail, error) {
	member, err := s.repo.GetMember(ctx, memberUid)
	if err != nil {
		return model.MemberDetail{}, err
	}
	active, err := s.repo.ListMemberActiveLoans(ctx, member.ID)
	if err != nil {
		return model.MemberDetail{}, err
	}
	history, err := s.repo.ListMemberLoanHistory(ctx, member.ID, 10)
	if err != nil {
		return model.MemberDetail{}, err
	}
	reservations, err := s.repo.ListMemberReservations(ctx, member.ID)
	if err != nil {
		return model.MemberDetail{}, err
	}
	return model.MemberDetail{
		Member:       member,
		ActiveLoans:  active,
		LoanHistory:  history,
		Reservations: reservations,
	}, nil
}

func (s *Service) ListMembers(ctx context.Context, status model.MemberStatus, page, size int) (model.ListMembers, error) {
	return s.repo.ListMembers(ctx, status, page, size)
}

func (s *Service) UpdateMember(ctx context.Context, memberUid string, req model.UpdateMemberRequest) (model.Member, error) {
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !emailRe.MatchString(email) {
			return model.Member{}, errors.Wrap(errs.ErrValidation, "invalid email address")
		}
		req.Email = &email
	}
	if req.Phone != nil && *req.Phone != "" && len(nonDigitRe.ReplaceAllString(*req.Phone, "")) < 10 {
		return model.Member{}, errors.Wrap(errs.ErrValidation, "phone number must be at least 10 digits long")
	}
	return s.repo.UpdateMember(ctx, memberUid, req)
}

// DeleteMember refuses to remove a member who still owns active loans or
// non-terminal reservations.
func (s *Service) DeleteMember(ctx context.Context, memberUid string) error {
	member, err := s.repo.GetMember(ctx, memberUid)
	if err != nil {
		return err
	}
	activeLoans, err := s.repo.CountMemberActiveLoans(ctx, member.ID)
	if err != nil {
		return err
	}
	if activeLoans > 0 {
		return errors.Wrap(errs.ErrHasActiveLoans, "cannot delete member with active loans")
	}
	reservations, err := s.repo.CountMemberActiveReservations(ctx, member.ID)
	if err != nil {
		return err
	}
	if reservations > 0 {
		return errors.Wrap(errs.ErrHasReservations, "cannot delete member with open reservations")
	}
	return s.repo.DeleteMember(ctx, memberUid)
}

// CanBorrow checks member eligibility. The first failing rule short-circuits
// with a human-readable reason.
func (s *Service) CanBorrow(ctx context.Context, memberUid string) (bool, string, error) {
	member, err := s.repo.GetMember(ctx, memberUid)
	if err != nil {
		return false, "", err
	}
	return s.canBorrow(ctx, member)
}

func (s *Service) canBorrow(ctx context.Context, member model.Member) (bool, string, error) {
	activeLoans, err := s.repo.CountMemberActiveLoans(ctx, member.ID)
	if err != nil {
		return false, "", err
	}
	if activeLoans >= s.cfg.MaxLoansPerMember {
		return false, fmt.Sprintf("maximum loan limit (%d) reached", s.cfg.MaxLoansPerMember), nil
	}
	if member.Status != model.MemberActive {
		return false, fmt.Sprintf("member status is %s", member.Status), nil
	}
	overdue, err := s.repo.ListMemberOverdueLoans(ctx, member.ID, s.today())
	if err != nil {
		return false, "", err
	}
	if len(overdue) > 0 {
		return false, "cannot borrow new books while having overdue items", nil
	}
	return true, "can borrow", nil
}
