//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"blueprint-api/internal/handler/api"
	reqdto "blueprint-api/internal/handler/dto/request"
	resdto "blueprint-api/internal/handler/dto/response"
	"blueprint-api/internal/usecase/commands"
	"blueprint-api/internal/usecase/queries"
	"blueprint-api/tests/common/builder"
	"blueprint-api/tests/common/httptest"
	commandsmock "blueprint-api/tests/mock/commands"
	queriesmock "blueprint-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmailJobHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDeliveryCommands
	mockQueries  *queriesmock.MockDeliveryQueries
	handler      *api.EmailJobHandler
}

func (s *EmailJobHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDeliveryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDeliveryQueries(s.mockCtrl)
	s.handler = api.NewEmailJobHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/internal/jobs/drain", s.handler.Drain)
	s.router.POST("/internal/jobs/requeue", s.handler.Requeue)
	s.router.GET("/admin/email-jobs/:id", s.handler.GetJob)
	s.router.GET("/admin/users/:id/email-jobs", s.handler.ListUserJobs)
	s.router.GET("/admin/users/:id/email-logs", s.handler.ListUserLogs)
}

func (s *EmailJobHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEmailJobHandlerSuite(t *testing.T) {
	suite.Run(t, new(EmailJobHandlerTestSuite))
}

func (s *EmailJobHandlerTestSuite) TestDrain() {
	url := "/internal/jobs/drain"

	s.Run("empty body drains with default batch size", func() {
		s.mockCommands.EXPECT().
			DrainDue(gomock.Any(), int32(0)).
			Return(&commands.DrainResult{Sent: 3, Errors: 1, Processed: 4}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.DrainResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &resp))
		s.Equal(3, resp.Sent)
		s.Equal(1, resp.Errors)
		s.Equal(4, resp.Processed)
	})

	s.Run("explicit limit is forwarded", func() {
		s.mockCommands.EXPECT().
			DrainDue(gomock.Any(), int32(10)).
			Return(&commands.DrainResult{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.DrainRequest{Limit: 10}, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("malformed body returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"limit": "ten"}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("drain failure returns 500", func() {
		s.mockCommands.EXPECT().DrainDue(gomock.Any(), int32(0)).Return(nil, commands.ErrDrainFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *EmailJobHandlerTestSuite) TestRequeue() {
	url := "/internal/jobs/requeue"

	s.Run("reports requeued count", func() {
		s.mockCommands.EXPECT().RequeueFailed(gomock.Any()).Return(int64(2), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.RequeueResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &resp))
		s.Equal(int64(2), resp.Requeued)
	})

	s.Run("requeue failure returns 500", func() {
		s.mockCommands.EXPECT().RequeueFailed(gomock.Any()).Return(int64(0), commands.ErrRequeueFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *EmailJobHandlerTestSuite) TestGetJob() {
	s.Run("returns the job", func() {
		job := builder.NewEmailJobBuilder().BuildReadModel()
		s.mockQueries.EXPECT().GetJob(gomock.Any(), job.ID).Return(job, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/email-jobs/"+job.ID.String(), nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), job.Email)
	})

	s.Run("unknown job returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetJob(gomock.Any(), id).Return(nil, queries.ErrEmailJobNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/email-jobs/"+id.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/email-jobs/not-a-uuid", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *EmailJobHandlerTestSuite) TestListUserJobs() {
	userID := uuid.New()
	url := "/admin/users/" + userID.String() + "/email-jobs"

	s.Run("returns a page with cursor", func() {
		job := builder.NewEmailJobBuilder().WithUserID(userID).BuildReadModel()
		page := &queries.EmailJobPage{Jobs: []*queries.EmailJobView{job}, NextCursor: "cursor123"}
		s.mockQueries.EXPECT().ListUserJobs(gomock.Any(), userID, 20, "").Return(page, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=20", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "cursor123")
	})

	s.Run("cursor is forwarded", func() {
		s.mockQueries.EXPECT().
			ListUserJobs(gomock.Any(), userID, 0, "cursor123").
			Return(&queries.EmailJobPage{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=cursor123", nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("bad cursor returns 400", func() {
		s.mockQueries.EXPECT().
			ListUserJobs(gomock.Any(), userID, 0, "garbage").
			Return(nil, errors.New("invalid cursor"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("negative limit returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=-1", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed user id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/not-a-uuid/email-jobs", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *EmailJobHandlerTestSuite) TestListUserLogs() {
	userID := uuid.New()

	s.Run("returns ledger entries", func() {
		logs := []*queries.EmailLogView{{
			ID:        uuid.New(),
			UserID:    userID,
			EmailType: "purchase_confirmation",
			Email:     "test@example.com",
			SentAt:    time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		}}
		s.mockQueries.EXPECT().ListUserLogs(gomock.Any(), userID).Return(logs, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/"+userID.String()+"/email-logs", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "purchase_confirmation")
	})

	s.Run("malformed user id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users/not-a-uuid/email-logs", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
