package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"serenity-backend/internal/model"
	"serenity-backend/internal/repository"
	"serenity-backend/internal/service"
	"serenity-backend/utilities"
)

const defaultAdminEmail = "admin@serenity.local"

var sampleTherapists = []model.Therapist{
	{
		Name:        "Dr. Amani Wanjiru",
		Experience:  "12 years",
		Gender:      "Female",
		Age:         "41",
		Location:    "Nairobi",
		Description: "Clinical psychologist focusing on anxiety, panic and stress management.",
		Contact:     "+254 700 000 101",
		Email:       "amani.wanjiru@example.com",
	},
	{
		Name:        "Dr. Kasun Perera",
		Experience:  "8 years",
		Gender:      "Male",
		Age:         "37",
		Location:    "Colombo",
		Description: "Counsellor for depression, grief and loneliness. Sessions in English and Sinhala.",
		Contact:     "+94 77 000 0202",
		Email:       "kasun.perera@example.com",
	},
	{
		Name:        "Dr. Lerato Mokoena",
		Experience:  "15 years",
		Gender:      "Female",
		Age:         "46",
		Location:    "Johannesburg",
		Description: "Family and relationship therapist. Mindfulness based approaches.",
		Contact:     "+27 82 000 0303",
		Email:       "lerato.mokoena@example.com",
	},
	{
		Name:        "Dr. Daniel Otieno",
		Experience:  "5 years",
		Gender:      "Male",
		Age:         "33",
		Location:    "Kisumu",
		Description: "Works with students and young professionals on burnout and self esteem.",
		Contact:     "+254 711 000 404",
		Email:       "daniel.otieno@example.com",
	},
}

// seed creates the admin account and a starter therapist directory.
func seed(authService service.AuthService, therapistRepo repository.TherapistRepository) error {
	if err := seedAdmin(authService); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	return seedTherapists(therapistRepo)
}

// seedAdmin reads the admin password from SERENITY_ADMIN_PASSWORD, or prompts
// for it when running in a terminal.
func seedAdmin(authService service.AuthService) error {
	email := os.Getenv("SERENITY_ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}

	password := os.Getenv("SERENITY_ADMIN_PASSWORD")
	if password == "" {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			utilities.Warn("SERENITY_ADMIN_PASSWORD not set, skipping admin bootstrap")
			return nil
		}
		fmt.Printf("Password for admin %s (empty to skip): ", email)
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return err
		}
		password = strings.TrimSpace(string(raw))
		if password == "" {
			return nil
		}
	}

	created, err := authService.EnsureAdmin(email, password)
	if err != nil {
		return err
	}
	if created {
		utilities.Info("created admin account %s", email)
	}
	return nil
}

func seedTherapists(therapistRepo repository.TherapistRepository) error {
	existing, err := therapistRepo.GetAllTherapists()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range sampleTherapists {
		t := sampleTherapists[i]
		if err := therapistRepo.CreateTherapist(&t); err != nil {
			return fmt.Errorf("therapist %q: %w", t.Name, err)
		}
	}
	utilities.Info("seeded %d therapists", len(sampleTherapists))
	return nil
}
