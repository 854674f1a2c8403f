package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/terraincognita07/tally/internal/models"
)

func TestToggleThemeFlipsAndPersistsAcrossRequests(t *testing.T) {
	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice@example.com", "s3cret")
	authCookie := loginAndExtractAuthCookie(t, app, "alice@example.com", "s3cret")

	first := postJSONRequest(t, app, "/toggle-theme", "", authCookie)
	defer first.Body.Close()
	if first.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.StatusCode)
	}
	var firstPayload map[string]string
	decodeJSONBody(t, first, &firstPayload)
	if firstPayload["theme"] != models.ThemeDark {
		t.Fatalf("theme = %q, want %q", firstPayload["theme"], models.ThemeDark)
	}

	var stored models.User
	if err := database.First(&stored, alice.ID).Error; err != nil {
		t.Fatalf("load account: %v", err)
	}
	if stored.Theme != models.ThemeDark {
		t.Fatalf("persisted theme = %s, want %s", stored.Theme, models.ThemeDark)
	}

	second := postJSONRequest(t, app, "/toggle-theme", "", authCookie)
	defer second.Body.Close()
	var secondPayload map[string]string
	decodeJSONBody(t, second, &secondPayload)
	if secondPayload["theme"] != models.ThemeLight {
		t.Fatalf("theme = %q, want %q", secondPayload["theme"], models.ThemeLight)
	}
}

func TestDeleteAccountWrongPasswordKeepsData(t *testing.T) {
	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice@example.com", "s3cret")
	habit := createTestHabit(t, database, alice.ID, "Read")
	createTestCheckIn(t, database, habit.ID, "2024-02-15")
	authCookie := loginAndExtractAuthCookie(t, app, "alice@example.com", "s3cret")

	response := postFormRequest(t, app, "/account/delete", url.Values{
		"password": {"wrong"},
	}, authCookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/habits" {
		t.Fatalf("expected redirect to /habits, got %s", location)
	}
	if flash := decodeFlashCookie(t, response); flash.HabitError == "" {
		t.Fatalf("expected error flash, got %+v", flash)
	}

	var users, habits, checkIns int64
	database.Model(&models.User{}).Count(&users)
	database.Model(&models.Habit{}).Count(&habits)
	database.Model(&models.CheckIn{}).Count(&checkIns)
	if users != 1 || habits != 1 || checkIns != 1 {
		t.Fatalf("expected data intact, got users=%d habits=%d checkIns=%d", users, habits, checkIns)
	}
}

func TestDeleteAccountCascadesAndEndsSession(t *testing.T) {
	app, database := newTestApp(t)
	alice := createTestUser(t, database, "alice@example.com", "s3cret")
	habit := createTestHabit(t, database, alice.ID, "Read")
	createTestCheckIn(t, database, habit.ID, "2024-02-15")

	bob := createTestUser(t, database, "bob@example.com", "s3cret")
	bobHabit := createTestHabit(t, database, bob.ID, "Run")
	createTestCheckIn(t, database, bobHabit.ID, "2024-02-15")

	authCookie := loginAndExtractAuthCookie(t, app, "alice@example.com", "s3cret")

	response := postFormRequest(t, app, "/account/delete", url.Values{
		"password": {"s3cret"},
	}, authCookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/signup" {
		t.Fatalf("expected redirect to /signup, got %s", location)
	}

	cookie := responseCookie(t, response, authCookieName)
	if cookie == nil || cookie.Value != "" {
		t.Fatal("expected auth cookie cleared after account delete")
	}

	var users, habits, checkIns int64
	database.Model(&models.User{}).Count(&users)
	database.Model(&models.Habit{}).Count(&habits)
	database.Model(&models.CheckIn{}).Count(&checkIns)
	if users != 1 || habits != 1 || checkIns != 1 {
		t.Fatalf("expected only the other account's data, got users=%d habits=%d checkIns=%d", users, habits, checkIns)
	}

	var survivor models.User
	if err := database.First(&survivor, bob.ID).Error; err != nil {
		t.Fatalf("expected surviving account: %v", err)
	}

	// the old session is dead
	followUp := getRequest(t, app, "/", authCookie)
	followUp.Body.Close()
	if followUp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 for dead session, got %d", followUp.StatusCode)
	}
}
