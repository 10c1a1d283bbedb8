package database

import (
	"fmt"
	"log"

	"github.com/GinYoshida/kanji-quize/internal/config"
	"github.com/GinYoshida/kanji-quize/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.QuizQuestion{},
		&model.LearningLog{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedQuestions(db)

	return db, nil
}

// seedQuestions inserts a starter set so a fresh install is playable.
func seedQuestions(db *gorm.DB) {
	var count int64
	db.Model(&model.QuizQuestion{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.QuizQuestion{
		{
			Kanji:      "木",
			Options:    []string{"木", "山", "川"},
			ImagePath:  "/images/tree.png",
			QuestionJa: "この えは どの かんじかな？",
			QuestionEn: "Which kanji matches this picture?",
			IsActive:   true,
			IsGlobal:   true,
		},
		{
			Kanji:      "山",
			Options:    []string{"川", "山", "木"},
			ImagePath:  "/images/mountain.png",
			QuestionJa: "この えは どの かんじかな？",
			QuestionEn: "Which kanji matches this picture?",
			IsActive:   true,
			IsGlobal:   true,
		},
		{
			Kanji:      "川",
			Options:    []string{"山", "木", "川"},
			ImagePath:  "/images/river.png",
			QuestionJa: "この えは どの かんじかな？",
			QuestionEn: "Which kanji matches this picture?",
			IsActive:   true,
			IsGlobal:   true,
		},
	}
	for _, q := range defaults {
		db.Create(&q)
	}
}
