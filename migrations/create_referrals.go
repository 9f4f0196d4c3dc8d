package migrations

import (
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

func MigrateReferrals() {
	utils.ReferralsDB.AutoMigrate(&models.Referral{})
	utils.ReferralsDB.AutoMigrate(&models.Reward{})
}
