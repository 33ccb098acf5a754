package services

import (
	"testing"

	"hestia/internal/models"
	"hestia/internal/pagination"
	"hestia/internal/testutil"
	"hestia/internal/uuid"
)

func TestCreateShutoff(t *testing.T) {
	t.Run("valid_shutoff", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		shutoff, err := svc.CreateShutoff(user.ID, property.ID, models.UtilityGas, "Behind the meter box", "needs the square key")
		testutil.AssertNoError(t, err)

		if shutoff.ID == "" {
			t.Error("expected a generated ID")
		}
		if shutoff.Utility != models.UtilityGas {
			t.Errorf("expected gas utility, got %s", shutoff.Utility)
		}
	})

	t.Run("blank_location", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		_, err := svc.CreateShutoff(user.ID, property.ID, models.UtilityWater, "  ", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("property_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateShutoff(user.ID, uuid.New(), models.UtilityWater, "Basement", "")
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})
}

func TestGetPropertyShutoffs(t *testing.T) {
	t.Run("grouped_by_utility", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)

		if _, err := svc.CreateShutoff(user.ID, property.ID, models.UtilityWater, "Under the sink", ""); err != nil {
			t.Fatalf("failed to create shutoff: %v", err)
		}
		if _, err := svc.CreateShutoff(user.ID, property.ID, models.UtilityElectricity, "Garage panel", ""); err != nil {
			t.Fatalf("failed to create shutoff: %v", err)
		}

		result, err := svc.GetPropertyShutoffs(user.ID, property.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Fatalf("expected 2 shutoff points, got %d", len(result.Data))
		}
		if result.Data[0].Utility != models.UtilityElectricity {
			t.Errorf("expected electricity first, got %s", result.Data[0].Utility)
		}
	})

	t.Run("wrong_user_property", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user1.ID)

		_, err := svc.GetPropertyShutoffs(user2.ID, property.ID, pagination.PageRequest{})
		testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
	})
}

func TestGetShutoffByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetShutoffByID(user.ID, uuid.New())
		testutil.AssertAppError(t, err, "SHUTOFF_NOT_FOUND")
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user1.ID)
		shutoff := testutil.CreateTestShutoff(t, db, property.ID)

		_, err := svc.GetShutoffByID(user2.ID, shutoff.ID)
		testutil.AssertAppError(t, err, "SHUTOFF_NOT_FOUND")
	})
}

func TestUpdateShutoff(t *testing.T) {
	t.Run("update_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)
		shutoff := testutil.CreateTestShutoff(t, db, property.ID)

		utility := models.UtilityGas
		updated, err := svc.UpdateShutoff(user.ID, shutoff.ID, &utility, "Outside wall", "")
		testutil.AssertNoError(t, err)

		if updated.Utility != models.UtilityGas {
			t.Errorf("expected gas utility, got %s", updated.Utility)
		}
		if updated.Location != "Outside wall" {
			t.Errorf("expected updated location, got %s", updated.Location)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateShutoff(user.ID, uuid.New(), nil, "Basement", "")
		testutil.AssertAppError(t, err, "SHUTOFF_NOT_FOUND")
	})
}

func TestDeleteShutoff(t *testing.T) {
	t.Run("removes_shutoff", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)
		property := testutil.CreateTestProperty(t, db, user.ID)
		shutoff := testutil.CreateTestShutoff(t, db, property.ID)

		err := svc.DeleteShutoff(user.ID, shutoff.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetShutoffByID(user.ID, shutoff.ID)
		testutil.AssertAppError(t, err, "SHUTOFF_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewShutoffService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteShutoff(user.ID, uuid.New())
		testutil.AssertAppError(t, err, "SHUTOFF_NOT_FOUND")
	})
}
