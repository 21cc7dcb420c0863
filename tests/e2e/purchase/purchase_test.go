//go:build e2e

package purchase_test

import (
	"net/http"
	"testing"
	"time"

	"blueprint-api/internal/domain/user"
	"blueprint-api/internal/handler/dto/request"
	"blueprint-api/tests/common/dbtest"
	"blueprint-api/tests/common/helper"
	"blueprint-api/tests/e2e"
	jwtHelper "blueprint-api/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	verifyURL    = "/api/purchases/verify"
	purchasesURL = "/api/purchases"
	catalogURL   = "/api/workbooks"
)

type verifyResponse struct {
	PurchaseID uuid.UUID `json:"purchaseId"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Replayed   bool      `json:"replayed"`
}

type catalogResponse struct {
	Products []struct {
		ProductType string `json:"productType"`
		Free        bool   `json:"free"`
		HasAccess   bool   `json:"hasAccess"`
	} `json:"products"`
}

type purchaseSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestPurchaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(purchaseSuite))
}

func (s *purchaseSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *purchaseSuite) login(email string) string {
	return s.jwtHelper.CreateAndLoginWithDB(s.T(), s.DB, s.Router, email, string(user.RoleMember))
}

func (s *purchaseSuite) verifyRequest(productType, sessionRef string) request.VerifyPurchaseRequest {
	return request.VerifyPurchaseRequest{
		ProductType: productType,
		SessionRef:  sessionRef,
		AmountCents: 4900,
	}
}

func (s *purchaseSuite) TestVerifyPurchase() {
	s.Run("verified payment unlocks the workbook", func() {
		t := s.T()
		token := s.login("buyer@example.com")

		// Gated before purchase.
		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/workbooks/workbook_1", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_1", "cs_test_unlock"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res verifyResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
		require.False(t, res.Replayed)
		require.WithinDuration(t, time.Now().AddDate(0, 6, 0), res.ExpiresAt, time.Minute)

		w = helper.PerformRequest(t, s.Router, http.MethodGet, "/api/workbooks/workbook_1", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		// Follow-up email jobs were enqueued for the purchase.
		var jobs int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM email_jobs WHERE email = 'buyer@example.com' AND status = 'pending'").Scan(&jobs)
		require.NoError(t, err)
		require.Equal(t, 3, jobs)
	})

	s.Run("retrying the same session replays the purchase", func() {
		t := s.T()
		token := s.login("retry@example.com")
		body := s.verifyRequest("workbook_2", "cs_test_retry")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL, body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var first verifyResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &first))

		w = helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL, body, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var second verifyResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &second))
		require.True(t, second.Replayed)
		require.Equal(t, first.PurchaseID, second.PurchaseID)

		// Replay must not duplicate the purchase row or the follow-up jobs.
		var purchases int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM purchases WHERE session_ref = 'cs_test_retry'").Scan(&purchases)
		require.NoError(t, err)
		require.Equal(t, 1, purchases)
	})

	s.Run("reusing a session ref with different parameters conflicts", func() {
		t := s.T()
		token := s.login("conflict@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_1", "cs_test_conflict"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_3", "cs_test_conflict"), token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("free product cannot be purchased", func() {
		t := s.T()
		token := s.login("freebie@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_0", "cs_test_free"), token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("unknown product is rejected", func() {
		t := s.T()
		token := s.login("typo@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_99", "cs_test_typo"), token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *purchaseSuite) TestEntitlements() {
	s.Run("free tier is open to every member", func() {
		t := s.T()
		token := s.login("member@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/workbooks/workbook_0", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("bundle grants access to every workbook", func() {
		t := s.T()
		token := s.login("bundle@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("bundle", "cs_test_bundle"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = helper.PerformRequest(t, s.Router, http.MethodGet, catalogURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var res catalogResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.Products)
		for _, p := range res.Products {
			require.True(t, p.HasAccess, "bundle should unlock %s", p.ProductType)
		}
	})

	s.Run("seeded purchase grants access", func() {
		t := s.T()
		token := s.login("seeded@example.com")

		var userID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'seeded@example.com'").Scan(&userID)
		require.NoError(t, err)

		dbtest.CreateTestPurchase(t, s.DB, userID, "workbook_3", time.Now())

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/workbooks/workbook_3", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("expired purchase no longer grants access", func() {
		t := s.T()
		token := s.login("lapsed@example.com")

		var userID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'lapsed@example.com'").Scan(&userID)
		require.NoError(t, err)

		_, err = s.DB.Exec(t.Context(), `INSERT INTO purchases (user_id, product_type, session_ref, amount_cents, purchased_at, expires_at)
			VALUES ($1, 'workbook_4', 'cs_test_lapsed', 4900, now() - interval '7 months', now() - interval '1 month')`, userID)
		require.NoError(t, err)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/workbooks/workbook_4", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("repurchase extends the expiration window", func() {
		t := s.T()
		token := s.login("extender@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_5", "cs_test_extend_1"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var userID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'extender@example.com'").Scan(&userID)
		require.NoError(t, err)

		// Push the existing window out past the default grant.
		farFuture := time.Now().AddDate(0, 9, 0).UTC()
		_, err = s.DB.Exec(t.Context(),
			"UPDATE purchases SET expires_at = $1 WHERE user_id = $2 AND product_type = 'workbook_5'", farFuture, userID)
		require.NoError(t, err)

		w = helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_5", "cs_test_extend_2"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res verifyResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &res))
		require.WithinDuration(t, farFuture, res.ExpiresAt, time.Minute,
			"an existing longer window must never be shortened")
	})

	s.Run("purchase listing reports the active flag", func() {
		t := s.T()
		token := s.login("lister@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_1", "cs_test_lister"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = helper.PerformRequest(t, s.Router, http.MethodGet, purchasesURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"active":true`)
	})
}

func (s *purchaseSuite) TestAdminAudit() {
	s.Run("admin can inspect a user's email jobs", func() {
		t := s.T()
		memberToken := s.login("audited@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			s.verifyRequest("workbook_1", "cs_test_audit"), memberToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var userID uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT id FROM users WHERE email = 'audited@example.com'").Scan(&userID)
		require.NoError(t, err)

		adminToken := s.jwtHelper.CreateAndLoginWithDB(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w = helper.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users/"+userID.String()+"/email-jobs", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "purchase_confirmation")
	})

	s.Run("admin can fetch a single email job", func() {
		t := s.T()
		userID := s.jwtHelper.CreateTestUserWithDB(t, s.DB, "jobholder@example.com", string(user.RoleMember))
		jobID := dbtest.CreateTestEmailJob(t, s.DB, userID, "jobholder@example.com", "getting_started", time.Now())

		adminToken := s.jwtHelper.CreateAndLoginWithDB(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/email-jobs/"+jobID.String(), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "getting_started")
	})

	s.Run("member cannot reach admin audit endpoints", func() {
		t := s.T()
		token := s.login("curious@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users/"+uuid.NewString()+"/email-jobs", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *purchaseSuite) TestCronEndpoints() {
	s.Run("drain requires the cron token", func() {
		w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/internal/jobs/drain", nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("requeue requires the cron token", func() {
		w := helper.PerformRequest(s.T(), s.Router, http.MethodPost, "/internal/jobs/requeue", nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
