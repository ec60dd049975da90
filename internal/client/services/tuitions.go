package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
)

type TuitionService interface {
	List(ctx context.Context) ([]models.Tuition, error)
	Get(ctx context.Context, tuitionID int64) (*models.Tuition, error)
	ByUser(ctx context.Context, userID int64) ([]models.Tuition, error)
	ByStatus(ctx context.Context, status models.TuitionStatus) ([]models.Tuition, error)
	BySubject(ctx context.Context, subject string) ([]models.Tuition, error)
	ByLocation(ctx context.Context, locationID int64) ([]models.Tuition, error)
	BySalaryRange(ctx context.Context, maxSalary float64) ([]models.Tuition, error)
	Create(ctx context.Context, userID int64, p models.TuitionPayload) (*models.Tuition, error)
	Update(ctx context.Context, tuitionID int64, p models.TuitionPayload) (*models.Tuition, error)
	MarkTaken(ctx context.Context, tuitionID int64) (*models.Tuition, error)
	MarkCompleted(ctx context.Context, tuitionID int64) (*models.Tuition, error)
	Delete(ctx context.Context, tuitionID int64) error
}

type tuitionService struct {
	r Requester
}

func NewTuitionService(r Requester) TuitionService {
	return &tuitionService{r: r}
}

func (s *tuitionService) List(ctx context.Context) ([]models.Tuition, error) {
	return s.list(ctx, "/api/tuitions")
}

func (s *tuitionService) Get(ctx context.Context, tuitionID int64) (*models.Tuition, error) {
	return s.one(ctx, http.MethodGet, "/api/tuitions/"+id(tuitionID), nil)
}

func (s *tuitionService) ByUser(ctx context.Context, userID int64) ([]models.Tuition, error) {
	return s.list(ctx, "/api/tuitions/user/"+id(userID))
}

func (s *tuitionService) ByStatus(ctx context.Context, status models.TuitionStatus) ([]models.Tuition, error) {
	return s.list(ctx, "/api/tuitions/status/"+seg(string(status)))
}

func (s *tuitionService) BySubject(ctx context.Context, subject string) ([]models.Tuition, error) {
	return s.list(ctx, "/api/tuitions/subject/"+seg(subject))
}

func (s *tuitionService) ByLocation(ctx context.Context, locationID int64) ([]models.Tuition, error) {
	return s.list(ctx, "/api/tuitions/location/"+id(locationID))
}

func (s *tuitionService) BySalaryRange(ctx context.Context, maxSalary float64) ([]models.Tuition, error) {
	return s.list(ctx, "/api/tuitions/salary/max/"+strconv.FormatFloat(maxSalary, 'f', -1, 64))
}

// Create posts a tuition owned by userID, which the backend takes from the
// query string rather than the token.
func (s *tuitionService) Create(ctx context.Context, userID int64, p models.TuitionPayload) (*models.Tuition, error) {
	return s.one(ctx, http.MethodPost, "/api/tuitions?userId="+id(userID), p)
}

func (s *tuitionService) Update(ctx context.Context, tuitionID int64, p models.TuitionPayload) (*models.Tuition, error) {
	return s.one(ctx, http.MethodPut, "/api/tuitions/"+id(tuitionID), p)
}

func (s *tuitionService) MarkTaken(ctx context.Context, tuitionID int64) (*models.Tuition, error) {
	return s.one(ctx, http.MethodPut, "/api/tuitions/"+id(tuitionID)+"/take", nil)
}

func (s *tuitionService) MarkCompleted(ctx context.Context, tuitionID int64) (*models.Tuition, error) {
	return s.one(ctx, http.MethodPut, "/api/tuitions/"+id(tuitionID)+"/complete", nil)
}

func (s *tuitionService) Delete(ctx context.Context, tuitionID int64) error {
	return s.r.Do(ctx, http.MethodDelete, "/api/tuitions/"+id(tuitionID), nil, nil)
}

func (s *tuitionService) list(ctx context.Context, path string) ([]models.Tuition, error) {
	raw, err := getList(ctx, s.r, path)
	if err != nil {
		return nil, err
	}
	return normalize.Tuitions(raw), nil
}

func (s *tuitionService) one(ctx context.Context, method, path string, body any) (*models.Tuition, error) {
	raw, err := getObject(ctx, s.r, method, path, body)
	if err != nil {
		return nil, err
	}
	t := normalize.Tuition(raw)
	return &t, nil
}
