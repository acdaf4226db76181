package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Abdulwakil1/Creatorverse/core"
	"github.com/Abdulwakil1/Creatorverse/mocks"
	"github.com/Abdulwakil1/Creatorverse/models"
	"github.com/Abdulwakil1/Creatorverse/utils/redislog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ctx   = context.Background()
	fixed = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newSvc(repo *mocks.CreatorRepositoryMock, audit *redislog.Logger) CreatorService {
	return NewCreatorService(repo, zap.NewNop(), audit)
}

func auditJSON(level, event string, fields map[string]string) []byte {
	b, err := json.Marshal(redislog.Entry{Level: level, Event: event, Time: "2025-03-01T12:00:00Z", Fields: fields})
	if err != nil {
		panic(err)
	}
	return b
}

func TestCreatorService_Create_Success_TrimsAndAudits(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	audit, _, rmock := mocks.NewRedisLoggerWithMock(fixed)

	repo.On("Create", ctx, mock.AnythingOfType("*models.Creator")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Creator).ID = 10
	})
	rmock.ExpectLPush(mocks.AuditKey, auditJSON("info", "creator created", map[string]string{"creator_id": "10", "name": "Ada Lovelace"})).SetVal(1)
	rmock.ExpectLTrim(mocks.AuditKey, 0, 99).SetVal("OK")

	svc := newSvc(repo, audit)
	c, err := svc.CreateCreator(ctx, models.CreateCreatorRequest{
		Name:    "  Ada   Lovelace ",
		YouTube: " https://youtube.com/@ada ",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(10), c.ID)
	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, "https://youtube.com/@ada", c.YouTube)
	assert.NoError(t, rmock.ExpectationsWereMet())
	repo.AssertExpectations(t)
}

func TestCreatorService_Create_NameRequired(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	svc := newSvc(repo, nil)

	c, err := svc.CreateCreator(ctx, models.CreateCreatorRequest{Name: "   "})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNameRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatorService_Create_FirstInvalidFieldBlocksInsert(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	audit, _, rmock := mocks.NewRedisLoggerWithMock(fixed)

	rmock.ExpectLPush(mocks.AuditKey, auditJSON("warn", "creator rejected", map[string]string{"field": "x", "creator_id": "0"})).SetVal(1)
	rmock.ExpectLTrim(mocks.AuditKey, 0, 99).SetVal("OK")

	svc := newSvc(repo, audit)
	c, err := svc.CreateCreator(ctx, models.CreateCreatorRequest{
		Name:         "Ada",
		YouTube:      "youtube.com/ada",
		X:            "https://instagram.com/ada",
		OtherSocials: "https://youtube.com/also-wrong",
	})

	assert.Nil(t, c)
	var fe *core.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "x", fe.Field)
	assert.Equal(t, "X field must contain a valid X/Twitter URL.", fe.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCreatorService_Create_RepoError(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Creator")).Return(errors.New("db down"))

	svc := newSvc(repo, nil)
	_, err := svc.CreateCreator(ctx, models.CreateCreatorRequest{Name: "Ada"})
	assert.ErrorContains(t, err, "db down")
}

func TestCreatorService_Get_NotFound(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	repo.On("FindByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := newSvc(repo, nil)
	_, err := svc.GetCreator(ctx, 9)
	assert.ErrorIs(t, err, ErrCreatorNotFound)
}

func TestCreatorService_View_ResolvesSocials(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	repo.On("FindByID", ctx, uint(1)).Return(&models.Creator{ID: 1, Name: "ada", X: "@ada", OtherSocials: "https://example.org/ada"}, nil)

	svc := newSvc(repo, nil)
	v, err := svc.ViewCreator(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "ADA", v.DisplayName)
	require.Len(t, v.Socials, 2)
	assert.Equal(t, core.ResolvedSocial{Handle: "ada", Href: "https://x.com/ada", Icon: core.IconX}, v.Socials[0])
	assert.Equal(t, core.ResolvedSocial{Handle: "ada", Href: "https://example.org/ada", Icon: core.IconGlobe}, v.Socials[1])
}

func TestCreatorService_Update_MergesAndValidates(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	repo.On("FindByID", ctx, uint(2)).Return(&models.Creator{ID: 2, Name: "Old", Instagram: "instagram.com/old"}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*models.Creator")).Return(nil)

	svc := newSvc(repo, nil)
	name, yt := " New ", "https://youtube.com/@new"
	got, err := svc.UpdateCreator(ctx, 2, models.UpdateCreatorRequest{Name: &name, YouTube: &yt})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "https://youtube.com/@new", got.YouTube)
	assert.Equal(t, "instagram.com/old", got.Instagram)
	repo.AssertExpectations(t)
}

func TestCreatorService_Update_InvalidSocialNoWrite(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	repo.On("FindByID", ctx, uint(2)).Return(&models.Creator{ID: 2, Name: "Old"}, nil)

	svc := newSvc(repo, nil)
	other := "https://twitter.com/old"
	_, err := svc.UpdateCreator(ctx, 2, models.UpdateCreatorRequest{OtherSocials: &other})

	var fe *core.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "other_socials", fe.Field)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreatorService_Update_EmptyNameRejected(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	repo.On("FindByID", ctx, uint(2)).Return(&models.Creator{ID: 2, Name: "Old"}, nil)

	svc := newSvc(repo, nil)
	blank := "  "
	_, err := svc.UpdateCreator(ctx, 2, models.UpdateCreatorRequest{Name: &blank})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreatorService_Delete(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	audit, _, rmock := mocks.NewRedisLoggerWithMock(fixed)

	repo.On("Delete", ctx, uint(3)).Return(nil)
	repo.On("Delete", ctx, uint(4)).Return(gorm.ErrRecordNotFound)
	rmock.ExpectLPush(mocks.AuditKey, auditJSON("info", "creator deleted", map[string]string{"creator_id": "3"})).SetVal(1)
	rmock.ExpectLTrim(mocks.AuditKey, 0, 99).SetVal("OK")

	svc := newSvc(repo, audit)
	assert.NoError(t, svc.DeleteCreator(ctx, 3))
	assert.ErrorIs(t, svc.DeleteCreator(ctx, 4), ErrCreatorNotFound)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCreatorService_ListViews_KeepsOrder(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	var rows []models.Creator
	for i := 1; i <= 25; i++ {
		rows = append(rows, models.Creator{ID: uint(i), Name: "c", Instagram: "@handle"})
	}
	repo.On("List", ctx).Return(rows, nil)

	svc := newSvc(repo, nil)
	out, err := svc.ListCreatorViews(ctx)
	require.NoError(t, err)

	assert.Equal(t, 25, out.Total)
	for i, v := range out.Items {
		assert.Equal(t, uint(i+1), v.ID)
		require.Len(t, v.Socials, 1)
		assert.Equal(t, "https://instagram.com/handle", v.Socials[0].Href)
	}
}

func TestCreatorService_ListViews_Empty(t *testing.T) {
	repo := new(mocks.CreatorRepositoryMock)
	repo.On("List", ctx).Return(nil, nil)

	out, err := newSvc(repo, nil).ListCreatorViews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Items)
}

func TestCreatorService_RecentActivity_NoRedis(t *testing.T) {
	svc := newSvc(new(mocks.CreatorRepositoryMock), nil)
	got, err := svc.RecentActivity(ctx, 5)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreatorService_RecentActivity_ClampsLimit(t *testing.T) {
	entry := string(auditJSON("info", "creator deleted", map[string]string{"creator_id": "3"}))

	for _, n := range []int64{0, -4, 500} {
		audit, _, rmock := mocks.NewRedisLoggerWithMock(fixed)
		rmock.ExpectLRange(mocks.AuditKey, 0, 19).SetVal([]string{entry})

		got, err := newSvc(new(mocks.CreatorRepositoryMock), audit).RecentActivity(ctx, n)
		require.NoError(t, err, n)
		require.Len(t, got, 1)
		assert.Equal(t, "creator deleted", got[0].Event)
		assert.NoError(t, rmock.ExpectationsWereMet(), n)
	}
}

func TestCreatorService_RecentActivity_KeepsValidLimit(t *testing.T) {
	audit, _, rmock := mocks.NewRedisLoggerWithMock(fixed)
	rmock.ExpectLRange(mocks.AuditKey, 0, 99).SetVal([]string{})

	got, err := newSvc(new(mocks.CreatorRepositoryMock), audit).RecentActivity(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, rmock.ExpectationsWereMet())
}
