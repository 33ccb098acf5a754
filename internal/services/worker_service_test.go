package services

import (
	"testing"

	"hestia/internal/pagination"
	"hestia/internal/testutil"
	"hestia/internal/uuid"
)

func TestCreateWorker(t *testing.T) {
	t.Run("valid_worker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		rate := int64(8500)
		worker, err := svc.CreateWorker(user.ID, property.ID, "Sam Ward", "electrician", "555-0101", "sam@trades.example", &rate, "")
		testutil.AssertNoError(t, err)

		if worker.ID == "" {
			t.Error("expected a generated ID")
		}
		if worker.Trade != "electrician" {
			t.Errorf("expected trade electrician, got %s", worker.Trade)
		}
		if worker.HourlyRate == nil || *worker.HourlyRate != 8500 {
			t.Errorf("expected rate 8500, got %v", worker.HourlyRate)
		}
	})

	t.Run("blank_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		_, err := svc.CreateWorker(user.ID, property.ID, " ", "", "", "", nil, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		rate := int64(-100)
		_, err := svc.CreateWorker(user.ID, property.ID, "Sam Ward", "", "", "", &rate, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("property_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateWorker(user.ID, uuid.New(), "Sam Ward", "", "", "", nil, "")
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})
}

func TestGetPropertyWorkers(t *testing.T) {
	t.Run("sorted_by_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		if _, err := svc.CreateWorker(user.ID, property.ID, "Zoe Hill", "roofer", "", "", nil, ""); err != nil {
			t.Fatalf("failed to create worker: %v", err)
		}
		if _, err := svc.CreateWorker(user.ID, property.ID, "Ana Brook", "painter", "", "", nil, ""); err != nil {
			t.Fatalf("failed to create worker: %v", err)
		}

		result, err := svc.GetPropertyWorkers(user.ID, property.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Fatalf("expected 2 workers, got %d", len(result.Data))
		}
		if result.Data[0].Name != "Ana Brook" || result.Data[1].Name != "Zoe Hill" {
			t.Errorf("expected name order, got [%s %s]", result.Data[0].Name, result.Data[1].Name)
		}
	})

	t.Run("wrong_user_property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user1.ID)

		_, err := svc.GetPropertyWorkers(user2.ID, property.ID, pagination.PageRequest{})
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})
}

func TestGetWorkerByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetWorkerByID(user.ID, uuid.New())
		testutil.AssertAppError(t, err, "WORKER_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user1.ID)
		worker := testutil.CreateTestWorker(t, db, property.ID)

		_, err := svc.GetWorkerByID(user2.ID, worker.ID)
		testutil.AssertAppError(t, err, "WORKER_NOT_FOUND")
	})
}

func TestUpdateWorker(t *testing.T) {
	t.Run("update_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)
		worker := testutil.CreateTestWorker(t, db, property.ID)

		rate := int64(9000)
		updated, err := svc.UpdateWorker(user.ID, worker.ID, "", "hvac", "555-0199", "", &rate, "")
		testutil.AssertNoError(t, err)

		if updated.Trade != "hvac" {
			t.Errorf("expected trade hvac, got %s", updated.Trade)
		}
		if updated.Name != worker.Name {
			t.Errorf("expected name unchanged, got %s", updated.Name)
		}
		if updated.HourlyRate == nil || *updated.HourlyRate != 9000 {
			t.Errorf("expected rate 9000, got %v", updated.HourlyRate)
		}
	})

	t.Run("negative_rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)
		worker := testutil.CreateTestWorker(t, db, property.ID)

		rate := int64(-1)
		_, err := svc.UpdateWorker(user.ID, worker.ID, "", "", "", "", &rate, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateWorker(user.ID, uuid.New(), "Name", "", "", "", nil, "")
		testutil.AssertAppError(t, err, "WORKER_NOT_FOUND")
	})
}

func TestDeleteWorker(t *testing.T) {
	t.Run("removes_worker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)
		worker := testutil.CreateTestWorker(t, db, property.ID)

		err := svc.DeleteWorker(user.ID, worker.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetWorkerByID(user.ID, worker.ID)
		testutil.AssertAppError(t, err, "WORKER_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWorkerService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteWorker(user.ID, uuid.New())
		testutil.AssertAppError(t, err, "WORKER_NOT_FOUND")
	})
}
