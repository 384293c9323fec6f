package service

import (
	"context"
	"strings"

	"webtoonhub/internal/microservices/http-api/dto"
	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/shared"
)

// MemberService covers admin management of members and artists.
type MemberService interface {
	ListMembers(ctx context.Context, page, pageSize int) ([]models.Member, int64, error)
	GetMember(ctx context.Context, id int64) (*models.Member, error)
	UpdateMember(ctx context.Context, id int64, in dto.UpdateMemberDTO) (*models.Member, error)
	DeleteMember(ctx context.Context, id int64) error

	ListArtists(ctx context.Context, page, pageSize int) ([]models.Artist, int64, error)
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	CreateArtist(ctx context.Context, in dto.CreateArtistDTO) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, in dto.UpdateArtistDTO) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
}

type memberService struct {
	memberRepo repository.MemberRepository
	artistRepo repository.ArtistRepository
	adminID    int64
}

func NewMemberService(memberRepo repository.MemberRepository, artistRepo repository.ArtistRepository, defaultAdminID int64) MemberService {
	return &memberService{memberRepo: memberRepo, artistRepo: artistRepo, adminID: defaultAdminID}
}

func (s *memberService) ListMembers(ctx context.Context, page, pageSize int) ([]models.Member, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	list, total, err := s.memberRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, shared.Internal("list members", err)
	}
	return list, total, nil
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*models.Member, error) {
	m, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "member not found")
	}
	return m, nil
}

func (s *memberService) UpdateMember(ctx context.Context, id int64, in dto.UpdateMemberDTO) (*models.Member, error) {
	m, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "member not found")
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &email
	}
	in.ApplyTo(m)
	if err := s.memberRepo.Update(ctx, m); err != nil {
		if shared.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, shared.Internal("update member", err)
	}
	return m, nil
}

// DeleteMember refuses to remove the system account comments are stamped with
func (s *memberService) DeleteMember(ctx context.Context, id int64) error {
	if id == s.adminID {
		return shared.Conflict("the default admin account cannot be deleted")
	}
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "member not found")
	}
	return nil
}

func (s *memberService) ListArtists(ctx context.Context, page, pageSize int) ([]models.Artist, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	list, total, err := s.artistRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, shared.Internal("list artists", err)
	}
	return list, total, nil
}

func (s *memberService) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	a, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "artist not found")
	}
	return a, nil
}

func (s *memberService) CreateArtist(ctx context.Context, in dto.CreateArtistDTO) (*models.Artist, error) {
	a := in.ToModel()
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return nil, shared.Validation("name is required")
	}
	a.AdminID = s.adminID
	if err := s.artistRepo.Create(ctx, &a); err != nil {
		return nil, shared.Internal("create artist", err)
	}
	return &a, nil
}

func (s *memberService) UpdateArtist(ctx context.Context, id int64, in dto.UpdateArtistDTO) (*models.Artist, error) {
	a, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "artist not found")
	}
	in.ApplyTo(a)
	if strings.TrimSpace(a.Name) == "" {
		return nil, shared.Validation("name must not be empty")
	}
	if err := s.artistRepo.Update(ctx, a); err != nil {
		return nil, shared.Internal("update artist", err)
	}
	return a, nil
}

func (s *memberService) DeleteArtist(ctx context.Context, id int64) error {
	if err := s.artistRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, "artist not found")
	}
	return nil
}
