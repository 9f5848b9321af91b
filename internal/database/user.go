package database

import (
	"github.com/thereayou/gamehub/internal/models"
)

func (d *Database) CreateUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		return err
	}
	return nil
}

func (d *Database) UpdateUser(user *models.User) error {
	return d.db.Save(user).Error
}

func (d *Database) GetUser(id uint) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) UpdatePassword(id uint, passwordHash string) error {
	return d.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash).Error
}

func (d *Database) DeleteUser(id uint) error {
	return d.db.Delete(&models.User{}, id).Error
}
