package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

func ptr[T any](v T) *T { return &v }

func date(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

// Seed loads the development fixture: an admin, two users and a spread
// of documents, activities, requests, agreements, quota counters and
// transactions across the workflow states.  Intended for dev mode and
// tests; calling it twice duplicates the randomly keyed records.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	users := []model.User{
		{
			ID:        "admin-123",
			Email:     ptr("admin@datakependudukan.gov.id"),
			FirstName: ptr("Admin"),
			LastName:  ptr("Pratama"),
			Role:      model.RoleAdmin,
			IsActive:  true,
			Quota:     1000,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "user-001",
			Email:     ptr("budi.santoso@example.com"),
			FirstName: ptr("Budi"),
			LastName:  ptr("Santoso"),
			Role:      model.RoleUser,
			IsActive:  true,
			Quota:     100,
			CreatedAt: now.AddDate(0, 0, -7),
			UpdatedAt: now,
		},
		{
			ID:        "user-002",
			Email:     ptr("siti.rahma@example.com"),
			FirstName: ptr("Siti"),
			LastName:  ptr("Rahma"),
			Role:      model.RoleUser,
			IsActive:  true,
			Quota:     100,
			CreatedAt: now.AddDate(0, 0, -14),
			UpdatedAt: now,
		},
	}
	for _, u := range users {
		s.users[u.ID] = u
	}

	documents := []model.Document{
		{
			ID:             "doc-001",
			Title:          "Perjanjian Kerja Sama (PKS) Tahun 2024",
			Description:    ptr("Perjanjian kerja sama antara Dinas Kependudukan dan Catatan Sipil"),
			FileName:       "pks-2024-signed.pdf",
			FilePath:       "/uploads/pks-2024-signed.pdf",
			FileSize:       2048576,
			MimeType:       "application/pdf",
			UploadedBy:     ptr("admin-123"),
			Status:         model.DocumentStatusApproved,
			Category:       model.CategoryPKS,
			ExpirationDate: date("2024-12-31"),
			IsActive:       true,
			Version:        "1.0",
			CreatedAt:      now.AddDate(0, 0, -30),
			UpdatedAt:      now,
		},
		{
			ID:             "doc-002",
			Title:          "Petunjuk Teknis (Juknis) Akta Kelahiran",
			Description:    ptr("Petunjuk teknis pengurusan akta kelahiran untuk warga baru"),
			FileName:       "juknis-akta-kelahiran.pdf",
			FilePath:       "/uploads/juknis-akta-kelahiran.pdf",
			FileSize:       1024000,
			MimeType:       "application/pdf",
			UploadedBy:     ptr("user-001"),
			Status:         model.DocumentStatusPending,
			Category:       model.CategoryJuknis,
			ExpirationDate: date("2025-06-30"),
			IsActive:       true,
			Version:        "2.1",
			CreatedAt:      now.AddDate(0, 0, -5),
			UpdatedAt:      now,
		},
	}
	for _, d := range documents {
		s.documents[d.ID] = d
	}

	activities := []model.Activity{
		{
			ID:          uuid.NewString(),
			UserID:      ptr("user-001"),
			Type:        model.ActivityLogin,
			Description: "Budi Santoso berhasil login",
			Metadata:    map[string]any{"ip": "192.168.1.1"},
			CreatedAt:   now.Add(-2 * time.Minute),
		},
		{
			ID:          uuid.NewString(),
			UserID:      ptr("user-002"),
			Type:        model.ActivityUpload,
			Description: "Siti Rahma upload dokumen PKS",
			Metadata:    map[string]any{"fileName": "dokumen-pks-2025.pdf"},
			CreatedAt:   now.Add(-15 * time.Minute),
		},
		{
			ID:          uuid.NewString(),
			UserID:      ptr("user-001"),
			Type:        model.ActivityDownload,
			Description: "Budi Santoso download juknis akta kelahiran",
			Metadata:    map[string]any{"documentId": "doc-002"},
			CreatedAt:   now.Add(-time.Hour),
		},
	}
	for _, a := range activities {
		s.activities[a.ID] = a
	}

	requests := []model.Request{
		{
			ID:          uuid.NewString(),
			UserID:      "user-001",
			Type:        "extension",
			Title:       "Perpanjangan Akses Database",
			Description: "Memerlukan perpanjangan akses untuk menyelesaikan laporan bulanan divisi kependudukan.",
			Status:      model.RequestStatusPending,
			Priority:    model.PriorityNormal,
			CreatedAt:   now.AddDate(0, 0, -2),
			UpdatedAt:   now.AddDate(0, 0, -2),
		},
		{
			ID:          uuid.NewString(),
			UserID:      "user-002",
			Type:        "quota_reset",
			Title:       "Reset Kuota Download",
			Description: "Kuota download dokumen sudah habis, memerlukan reset untuk keperluan audit internal.",
			Status:      model.RequestStatusPending,
			Priority:    model.PriorityUrgent,
			CreatedAt:   now.Add(-4 * time.Hour),
			UpdatedAt:   now.Add(-4 * time.Hour),
		},
	}
	for _, r := range requests {
		s.requests[r.ID] = r
	}

	agreements := []model.Agreement{
		{
			ID:              "agr-001",
			UserID:          "user-001",
			DocumentID:      ptr("doc-001"),
			Type:            model.CategoryPKS,
			AgreementNumber: ptr("PKS/2024/001"),
			StartDate:       date("2024-01-01"),
			EndDate:         date("2024-12-31"),
			Status:          model.AgreementStatusActive,
			CreatedAt:       now.AddDate(0, 0, -60),
			UpdatedAt:       now,
		},
		{
			ID:              "agr-002",
			UserID:          "user-002",
			DocumentID:      ptr("doc-002"),
			Type:            model.CategoryJuknis,
			AgreementNumber: ptr("JUK/2024/002"),
			StartDate:       date("2024-06-01"),
			EndDate:         date("2025-05-31"),
			Status:          model.AgreementStatusActive,
			CreatedAt:       now.AddDate(0, 0, -45),
			UpdatedAt:       now,
		},
		{
			ID:                 "agr-003",
			UserID:             "admin-123",
			DocumentID:         ptr("doc-001"),
			Type:               model.CategoryPOC,
			AgreementNumber:    ptr("POC/2024/003"),
			StartDate:          date("2024-09-01"),
			EndDate:            date("2024-11-30"),
			Status:             model.AgreementStatusPendingRenewal,
			RenewalRequested:   true,
			RenewalRequestDate: ptr(now.AddDate(0, 0, -5)),
			CreatedAt:          now.AddDate(0, 0, -30),
			UpdatedAt:          now,
		},
		{
			ID:              "agr-004",
			UserID:          "user-001",
			DocumentID:      ptr("doc-002"),
			Type:            model.CategoryPKS,
			AgreementNumber: ptr("PKS/2023/004"),
			StartDate:       date("2023-01-01"),
			EndDate:         date("2024-01-01"),
			Status:          model.AgreementStatusExpired,
			CreatedAt:       now.AddDate(0, 0, -365),
			UpdatedAt:       now,
		},
	}
	for _, a := range agreements {
		s.agreements[a.ID] = a
	}

	quotas := []model.QuotaUsage{
		{
			ID:         "quota-001",
			UserID:     "user-001",
			QuotaType:  "document_download",
			UsedAmount: 75,
			TotalQuota: 100,
			Period:     "monthly",
			ResetDate:  ptr(now.AddDate(0, 0, 10)),
			CreatedAt:  now.AddDate(0, 0, -20),
			UpdatedAt:  now,
		},
		{
			ID:         "quota-002",
			UserID:     "user-002",
			QuotaType:  "document_download",
			UsedAmount: 45,
			TotalQuota: 100,
			Period:     "monthly",
			ResetDate:  ptr(now.AddDate(0, 0, 15)),
			CreatedAt:  now.AddDate(0, 0, -15),
			UpdatedAt:  now,
		},
		{
			ID:         "quota-003",
			UserID:     "admin-123",
			QuotaType:  "document_download",
			UsedAmount: 350,
			TotalQuota: 1000,
			Period:     "monthly",
			ResetDate:  ptr(now.AddDate(0, 0, 25)),
			CreatedAt:  now.AddDate(0, 0, -30),
			UpdatedAt:  now,
		},
		{
			ID:         "quota-004",
			UserID:     "user-001",
			QuotaType:  "api_calls",
			UsedAmount: 480,
			TotalQuota: 500,
			Period:     "monthly",
			ResetDate:  ptr(now.AddDate(0, 0, 5)),
			CreatedAt:  now.AddDate(0, 0, -25),
			UpdatedAt:  now,
		},
	}
	for _, q := range quotas {
		s.quotaUsage[q.ID] = q
	}

	transactions := []model.PnbpTransaction{
		{
			ID:              "pnbp-001",
			UserID:          "user-001",
			TransactionID:   "TRX/2024/001",
			ServiceType:     ptr("akta_kelahiran"),
			Amount:          50000,
			Status:          model.TransactionStatusCompleted,
			PaymentMethod:   ptr("bank_transfer"),
			TransactionDate: now.AddDate(0, 0, -3),
			PaymentDate:     ptr(now.AddDate(0, 0, -2)),
			ReferenceNumber: ptr("REF-2024-001-ABC"),
			Notes:           ptr("Pembayaran untuk akta kelahiran anak pertama"),
			CreatedAt:       now.AddDate(0, 0, -3),
		},
		{
			ID:              "pnbp-002",
			UserID:          "user-002",
			TransactionID:   "TRX/2024/002",
			ServiceType:     ptr("akta_kematian"),
			Amount:          75000,
			Status:          model.TransactionStatusPending,
			PaymentMethod:   ptr("virtual_account"),
			TransactionDate: now.AddDate(0, 0, -1),
			ReferenceNumber: ptr("REF-2024-002-DEF"),
			Notes:           ptr("Pembayaran untuk akta kematian"),
			CreatedAt:       now.AddDate(0, 0, -1),
		},
		{
			ID:              "pnbp-003",
			UserID:          "admin-123",
			TransactionID:   "TRX/2024/003",
			ServiceType:     ptr("ktp_baru"),
			Amount:          100000,
			Status:          model.TransactionStatusCompleted,
			PaymentMethod:   ptr("e_wallet"),
			TransactionDate: now.AddDate(0, 0, -6),
			PaymentDate:     ptr(now.AddDate(0, 0, -5)),
			ReferenceNumber: ptr("REF-2024-003-GHI"),
			Notes:           ptr("Pembayaran untuk pembuatan KTP baru"),
			CreatedAt:       now.AddDate(0, 0, -6),
		},
		{
			ID:              "pnbp-004",
			UserID:          "user-001",
			TransactionID:   "TRX/2024/004",
			ServiceType:     ptr("kk_baru"),
			Amount:          25000,
			Status:          model.TransactionStatusFailed,
			PaymentMethod:   ptr("bank_transfer"),
			TransactionDate: now.AddDate(0, 0, -1),
			ReferenceNumber: ptr("REF-2024-004-JKL"),
			Notes:           ptr("Pembayaran gagal untuk kartu keluarga baru"),
			CreatedAt:       now.AddDate(0, 0, -1),
		},
	}
	for _, t := range transactions {
		s.transactions[t.ID] = t
	}
}
