package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

// SeedUsers creates the initial accounts when the users table is empty.
// Passwords come from the environment in real deployments; these are
// development defaults.
func SeedUsers() error {
	var count int64
	if err := utils.ReferralsDB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	accounts := []struct {
		username string
		email    string
		name     string
		role     string
	}{
		{"admin", "admin@amedstaffing.com", "Admin", models.RoleLeadership},
		{"recruiter", "recruiter@amedstaffing.com", "Demo Recruiter", models.RoleRecruiter},
		{"clinician", "clinician@amedstaffing.com", "Demo Clinician", models.RoleClinician},
	}

	for _, a := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Username: a.username,
			Email:    a.email,
			Name:     a.name,
			Role:     a.role,
			Password: string(hashed),
		}
		if err := utils.ReferralsDB.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Seeded user %s (%s)", a.username, a.role)
	}

	return nil
}
