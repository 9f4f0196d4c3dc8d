package migrations

import (
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

func MigrateNotifications() {
	utils.ReferralsDB.AutoMigrate(&models.Notification{})
}
