package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

func TestUpsertUserCreatesWithDefaults(t *testing.T) {
	s := New()
	ctx := context.Background()

	email := "budi@example.com"
	u, err := s.UpsertUser(ctx, model.UpsertUser{ID: "user-1", Email: &email})
	require.NoError(t, err)
	require.Equal(t, "user-1", u.ID)
	require.Equal(t, model.RoleUser, u.Role)
	require.True(t, u.IsActive)
	require.Equal(t, 100, u.Quota)
	require.NotNil(t, u.Email)
	require.Equal(t, email, *u.Email)
}

func TestUpsertUserMergesExisting(t *testing.T) {
	s := New()
	ctx := context.Background()

	email := "old@example.com"
	first := "Budi"
	_, err := s.UpsertUser(ctx, model.UpsertUser{ID: "user-1", Email: &email, FirstName: &first})
	require.NoError(t, err)

	newEmail := "new@example.com"
	u, err := s.UpsertUser(ctx, model.UpsertUser{ID: "user-1", Email: &newEmail})
	require.NoError(t, err)

	require.Equal(t, newEmail, *u.Email)
	// Untouched claim survives the merge.
	require.NotNil(t, u.FirstName)
	require.Equal(t, first, *u.FirstName)

	all, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestUpsertUserIdenticalClaimsIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()

	email := "budi@example.com"
	first := "Budi"
	claims := model.UpsertUser{ID: "user-1", Email: &email, FirstName: &first}

	u1, err := s.UpsertUser(ctx, claims)
	require.NoError(t, err)

	u2, err := s.UpsertUser(ctx, claims)
	require.NoError(t, err)

	require.Equal(t, u1.ID, u2.ID)
	require.Equal(t, *u1.Email, *u2.Email)
	require.Equal(t, u1.Role, u2.Role)
	require.Equal(t, u1.Quota, u2.Quota)
	require.False(t, u2.UpdatedAt.Before(u1.UpdatedAt))

	all, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestUpsertUserMintsIDWhenEmpty(t *testing.T) {
	s := New()
	u, err := s.UpsertUser(context.Background(), model.UpsertUser{})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
}

func TestGetUserAbsenceIsNotAnError(t *testing.T) {
	s := New()
	u, found, err := s.GetUser(context.Background(), "nope")
	require.NoError(t, err)
	require.False(t, found)
	require.Zero(t, u)
}

func TestUpdateUserPartial(t *testing.T) {
	s := New()
	ctx := context.Background()

	email := "budi@example.com"
	created, err := s.UpsertUser(ctx, model.UpsertUser{ID: "user-1", Email: &email})
	require.NoError(t, err)

	inactive := false
	u, found, err := s.UpdateUser(ctx, "user-1", model.UserUpdate{IsActive: &inactive})
	require.NoError(t, err)
	require.True(t, found)
	require.False(t, u.IsActive)
	require.Equal(t, email, *u.Email)
	require.False(t, u.UpdatedAt.Before(created.UpdatedAt))

	_, found, err = s.UpdateUser(ctx, "ghost", model.UserUpdate{IsActive: &inactive})
	require.NoError(t, err)
	require.False(t, found)
}

func TestCreateDocumentDefaults(t *testing.T) {
	s := New()
	d, err := s.CreateDocument(context.Background(), model.InsertDocument{
		Title:    "PKS 2025",
		FileName: "pks-2025.pdf",
		FilePath: "/uploads/pks-2025.pdf",
		FileSize: 1024,
		MimeType: "application/pdf",
		Category: model.CategoryPKS,
	})
	require.NoError(t, err)
	require.Equal(t, model.DocumentStatusPending, d.Status)
	require.Equal(t, "1.0", d.Version)
	require.True(t, d.IsActive)
	require.NotEmpty(t, d.ID)
}

func TestUpdateDocumentUnknownID(t *testing.T) {
	s := New()
	ctx := context.Background()

	d, err := s.CreateDocument(ctx, model.InsertDocument{
		Title: "PKS", FileName: "p.pdf", FilePath: "/p.pdf",
		FileSize: 1, MimeType: "application/pdf", Category: model.CategoryPKS,
	})
	require.NoError(t, err)

	status := model.DocumentStatusApproved
	got, found, err := s.UpdateDocument(ctx, "ghost", model.DocumentUpdate{Status: &status})
	require.NoError(t, err)
	require.False(t, found)
	require.Zero(t, got)

	// The existing row is untouched by the miss.
	cur, found, err := s.GetDocumentByID(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, model.DocumentStatusPending, cur.Status)
	require.Equal(t, d.UpdatedAt, cur.UpdatedAt)
}

func TestDeleteDocumentLeavesAgreementDangling(t *testing.T) {
	s := New()
	ctx := context.Background()

	d, err := s.CreateDocument(ctx, model.InsertDocument{
		Title: "Juknis", FileName: "j.pdf", FilePath: "/j.pdf",
		FileSize: 1, MimeType: "application/pdf", Category: model.CategoryJuknis,
	})
	require.NoError(t, err)

	a, err := s.CreateAgreement(ctx, model.InsertAgreement{
		UserID: "user-1", DocumentID: &d.ID, Type: model.CategoryJuknis,
	})
	require.NoError(t, err)

	found, err := s.DeleteDocument(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, found)

	found, err = s.DeleteDocument(ctx, d.ID)
	require.NoError(t, err)
	require.False(t, found)

	agrs, err := s.GetUserAgreements(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, agrs, 1)
	require.Equal(t, a.ID, agrs[0].ID)
	require.NotNil(t, agrs[0].DocumentID)
}

func TestActivitiesNewestFirstTruncated(t *testing.T) {
	s := New()
	ctx := context.Background()
	uid := "user-1"

	base := time.Now().Add(-time.Hour)
	s.mu.Lock()
	for i := 0; i < 5; i++ {
		id := string(rune('a' + i))
		s.activities[id] = model.Activity{
			ID: id, UserID: &uid, Type: model.ActivityLogin,
			Description: "login", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	s.mu.Unlock()

	acts, err := s.GetActivities(ctx, 3)
	require.NoError(t, err)
	require.Len(t, acts, 3)
	for i := 1; i < len(acts); i++ {
		require.False(t, acts[i].CreatedAt.After(acts[i-1].CreatedAt))
	}
	require.Equal(t, "e", acts[0].ID)

	mine, err := s.GetUserActivities(ctx, uid, 0)
	require.NoError(t, err)
	require.Len(t, mine, 5)

	other, err := s.GetUserActivities(ctx, "other", 0)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestCreateRequestForcesPending(t *testing.T) {
	s := New()
	r, err := s.CreateRequest(context.Background(), model.InsertRequest{
		UserID: "user-1",
		Type:   "extension",
		Title:  "Perpanjangan Akses",
		Status: model.RequestStatusApproved,
	})
	require.NoError(t, err)
	require.Equal(t, model.RequestStatusPending, r.Status)
	require.Equal(t, model.PriorityNormal, r.Priority)
	require.Nil(t, r.ReviewedBy)
	require.Nil(t, r.ReviewedAt)
}

func TestRequestReviewStamping(t *testing.T) {
	s := New()
	ctx := context.Background()

	r, err := s.CreateRequest(ctx, model.InsertRequest{UserID: "user-1", Type: "access", Title: "Akses"})
	require.NoError(t, err)

	pending, err := s.GetPendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	status := model.RequestStatusApproved
	admin := "admin-1"
	now := time.Now()
	upd, found, err := s.UpdateRequest(ctx, r.ID, model.RequestUpdate{
		Status: &status, ReviewedBy: &admin, ReviewedAt: &now,
	})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, model.RequestStatusApproved, upd.Status)
	require.Equal(t, admin, *upd.ReviewedBy)
	require.NotNil(t, upd.ReviewedAt)

	pending, err = s.GetPendingRequests(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestNotificationTargeting(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateNotification(ctx, model.InsertNotification{Title: "maintenance", Message: "tonight"})
	require.NoError(t, err)

	target := "user-1"
	_, err = s.CreateNotification(ctx, model.InsertNotification{
		Title: "personal", Message: "hi", TargetType: model.TargetUser, TargetID: &target,
	})
	require.NoError(t, err)

	role := model.RoleAdmin
	_, err = s.CreateNotification(ctx, model.InsertNotification{
		Title: "admins only", Message: "x", TargetType: model.TargetRole, TargetID: &role,
	})
	require.NoError(t, err)

	mine, err := s.GetUserNotifications(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	// Role-targeted rows never match, even for an id equal to the role.
	admins, err := s.GetUserNotifications(ctx, model.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, "maintenance", admins[0].Title)
}

func TestNotificationSharedReadFlag(t *testing.T) {
	s := New()
	ctx := context.Background()

	n, err := s.CreateNotification(ctx, model.InsertNotification{Title: "broadcast", Message: "m"})
	require.NoError(t, err)
	require.False(t, n.IsRead)

	found, err := s.MarkNotificationRead(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, found)

	// The flag lives on the notification itself, so every viewer sees it read.
	for _, uid := range []string{"user-1", "user-2"} {
		list, err := s.GetUserNotifications(ctx, uid)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.True(t, list[0].IsRead)
	}

	found, err = s.MarkNotificationRead(ctx, "ghost")
	require.NoError(t, err)
	require.False(t, found)
}

func TestExpiringAgreementsWindow(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()

	mk := func(days int, status string) model.Agreement {
		end := now.AddDate(0, 0, days)
		a, err := s.CreateAgreement(ctx, model.InsertAgreement{
			UserID: "user-1", Type: model.CategoryPKS, EndDate: &end, Status: status,
		})
		require.NoError(t, err)
		return a
	}

	inside := mk(20, "")
	outside := mk(45, "")
	pastDue := mk(-3, "")
	expired := mk(10, model.AgreementStatusExpired)

	agrs, err := s.GetExpiringAgreements(ctx, 30)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, a := range agrs {
		ids[a.ID] = true
	}
	require.True(t, ids[inside.ID])
	require.True(t, ids[pastDue.ID], "past-due active agreements stay visible")
	require.False(t, ids[outside.ID])
	require.False(t, ids[expired.ID])
}

func TestRenewalSetsFlagOnly(t *testing.T) {
	s := New()
	ctx := context.Background()

	a, err := s.CreateAgreement(ctx, model.InsertAgreement{UserID: "user-1", Type: model.CategoryPOC})
	require.NoError(t, err)
	require.Equal(t, model.AgreementStatusActive, a.Status)

	found, err := s.RequestAgreementRenewal(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, found)

	agrs, err := s.GetUserAgreements(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, agrs, 1)
	require.True(t, agrs[0].RenewalRequested)
	require.NotNil(t, agrs[0].RenewalRequestDate)
	// The status transition is the caller's separate update.
	require.Equal(t, model.AgreementStatusActive, agrs[0].Status)

	status := model.AgreementStatusPendingRenewal
	upd, found, err := s.UpdateAgreement(ctx, a.ID, model.AgreementUpdate{Status: &status})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, model.AgreementStatusPendingRenewal, upd.Status)

	found, err = s.RequestAgreementRenewal(ctx, "ghost")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMarkExpiredAgreements(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now()

	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 10)
	_, err := s.CreateAgreement(ctx, model.InsertAgreement{UserID: "u", Type: model.CategoryPKS, EndDate: &past})
	require.NoError(t, err)
	keep, err := s.CreateAgreement(ctx, model.InsertAgreement{UserID: "u", Type: model.CategoryPKS, EndDate: &future})
	require.NoError(t, err)

	n, err := s.MarkExpiredAgreements(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	agrs, err := s.GetUserAgreements(ctx, "u")
	require.NoError(t, err)
	for _, a := range agrs {
		if a.ID == keep.ID {
			require.Equal(t, model.AgreementStatusActive, a.Status)
		} else {
			require.Equal(t, model.AgreementStatusExpired, a.Status)
		}
	}

	// Second sweep finds nothing left to settle.
	n, err = s.MarkExpiredAgreements(ctx, now)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestQuotaIncrementAndRemaining(t *testing.T) {
	s := New()
	ctx := context.Background()

	q, err := s.CreateQuotaUsage(ctx, model.InsertQuotaUsage{
		UserID: "user-1", QuotaType: "document_download", UsedAmount: 10, TotalQuota: 100,
	})
	require.NoError(t, err)
	require.Equal(t, "monthly", q.Period)
	require.Equal(t, 90, q.Remaining())

	found, err := s.UpdateQuotaUsage(ctx, "user-1", "document_download", 5)
	require.NoError(t, err)
	require.True(t, found)

	found, err = s.UpdateQuotaUsage(ctx, "user-1", "document_download", -3)
	require.NoError(t, err)
	require.True(t, found)

	quotas, err := s.GetUserQuotaUsage(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, quotas, 1)
	require.Equal(t, 12, quotas[0].UsedAmount)
	require.Equal(t, 88, quotas[0].Remaining())

	// Counters are never auto-created.
	found, err = s.UpdateQuotaUsage(ctx, "user-1", "api_calls", 1)
	require.NoError(t, err)
	require.False(t, found)
}

func TestQuotaConcurrentIncrements(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateQuotaUsage(ctx, model.InsertQuotaUsage{
		UserID: "user-1", QuotaType: "api_calls", TotalQuota: 1000,
	})
	require.NoError(t, err)

	const n = 50
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			_, _ = s.UpdateQuotaUsage(ctx, "user-1", "api_calls", 1)
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}

	quotas, err := s.GetUserQuotaUsage(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, n, quotas[0].UsedAmount)
}

func TestResetUserQuota(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.CreateQuotaUsage(ctx, model.InsertQuotaUsage{
		UserID: "user-1", QuotaType: "document_download", UsedAmount: 75, TotalQuota: 100,
	})
	require.NoError(t, err)

	found, err := s.ResetUserQuota(ctx, "user-1", "document_download")
	require.NoError(t, err)
	require.True(t, found)

	quotas, err := s.GetUserQuotaUsage(ctx, "user-1")
	require.NoError(t, err)
	require.Zero(t, quotas[0].UsedAmount)
	require.NotNil(t, quotas[0].ResetDate)
	require.True(t, quotas[0].ResetDate.After(time.Now()))

	found, err = s.ResetUserQuota(ctx, "user-1", "api_calls")
	require.NoError(t, err)
	require.False(t, found)
}

func TestTransactionDefaultsAndSettlement(t *testing.T) {
	s := New()
	ctx := context.Background()

	tx, err := s.CreatePnbpTransaction(ctx, model.InsertPnbpTransaction{
		UserID: "user-1", TransactionID: "TRX/2025/001", Amount: 50000,
	})
	require.NoError(t, err)
	require.Equal(t, model.TransactionStatusPending, tx.Status)
	require.False(t, tx.TransactionDate.IsZero())
	require.Nil(t, tx.PaymentDate)

	found, err := s.UpdateTransactionStatus(ctx, tx.ID, model.TransactionStatusCompleted)
	require.NoError(t, err)
	require.True(t, found)

	txs, err := s.GetUserTransactions(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, model.TransactionStatusCompleted, txs[0].Status)
	require.NotNil(t, txs[0].PaymentDate)

	found, err = s.UpdateTransactionStatus(ctx, "ghost", model.TransactionStatusFailed)
	require.NoError(t, err)
	require.False(t, found)
}

func TestSeedDocumentsCarryUploader(t *testing.T) {
	s := New()
	s.Seed()
	ctx := context.Background()

	uploaders := map[string]string{
		"doc-001": "admin-123",
		"doc-002": "user-001",
	}
	for id, want := range uploaders {
		d, found, err := s.GetDocumentByID(ctx, id)
		require.NoError(t, err)
		require.True(t, found)
		require.NotNil(t, d.UploadedBy)
		require.Equal(t, want, *d.UploadedBy)
	}
}

func TestGetStatsCounters(t *testing.T) {
	s := New()
	s.Seed()
	ctx := context.Background()

	st, err := s.GetStats(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, st.TotalUsers)
	require.Equal(t, 3, st.ActiveUsers)
	require.Equal(t, 1, st.TodayLogins)
	require.Equal(t, 1, st.PendingDocs)
	require.Equal(t, 2, st.PendingRequests)
	require.Equal(t, 2, st.ActiveAgreements)
	// Both active seed agreements carry end dates that already passed,
	// and past-due actives count as expiring until a sweep settles them.
	require.Equal(t, 2, st.ExpiringAgreements)
	require.Equal(t, 75+45+350+480, st.TotalQuotaUsage)
	require.Equal(t, 1, st.PendingTransactions)
}

func TestGetStatsTodayLoginBoundary(t *testing.T) {
	s := New()
	ctx := context.Background()
	uid := "user-1"

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	s.mu.Lock()
	s.activities["today"] = model.Activity{
		ID: "today", UserID: &uid, Type: model.ActivityLogin, Description: "login", CreatedAt: now,
	}
	s.activities["stale"] = model.Activity{
		ID: "stale", UserID: &uid, Type: model.ActivityLogin, Description: "login", CreatedAt: yesterday,
	}
	s.activities["upload"] = model.Activity{
		ID: "upload", UserID: &uid, Type: model.ActivityUpload, Description: "upload", CreatedAt: now,
	}
	s.mu.Unlock()

	st, err := s.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, st.TodayLogins)
}

func TestDefaultLimitsApplied(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.mu.Lock()
	for i := 0; i < store.DefaultActivityLimit+10; i++ {
		id := fmt.Sprintf("act-%03d", i)
		s.activities[id] = model.Activity{
			ID: id, Type: model.ActivityLogin, Description: "x", CreatedAt: time.Now(),
		}
	}
	s.mu.Unlock()

	acts, err := s.GetActivities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, acts, store.DefaultActivityLimit)
}
