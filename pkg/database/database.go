package database

import (
	"fmt"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"log"

	"golang.org/x/crypto/bcrypt"
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
		&model.User{},
		&model.CatalogItem{},
		&model.LearnerProfile{},
		&model.WishlistItem{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认课程目录（目录为空时插入演示数据，接口联调用）
	var count int64
	db.Model(&model.CatalogItem{}).Count(&count)
	if count == 0 {
		defaultCatalog := []model.CatalogItem{
			{
				Title:           "Python数据分析入门",
				Category:        "Data",
				Tags:            []string{"Python", "Pandas", "NumPy", "Data"},
				Level:           model.LevelBeginner,
				Rating:          4.8,
				EnrollmentCount: 1890,
				IsTrending:      true,
			},
			{
				Title:           "Node.js 后端实战",
				Category:        "Programming",
				Tags:            []string{"Node.js", "Express", "API", "Backend"},
				Level:           model.LevelIntermediate,
				Rating:          4.6,
				EnrollmentCount: 2340,
			},
			{
				Title:           "机器学习基础",
				Category:        "AI",
				Tags:            []string{"Machine Learning", "Python", "AI"},
				Level:           model.LevelAdvanced,
				Rating:          4.9,
				EnrollmentCount: 3120,
				IsTrending:      true,
			},
			{
				Title:           "React 高级模式",
				Category:        "Programming",
				Tags:            []string{"React", "JavaScript", "Frontend"},
				Level:           model.LevelAdvanced,
				Rating:          4.7,
				EnrollmentCount: 1560,
				IsNew:           true,
			},
			{
				Title:           "PostgreSQL 数据库设计",
				Category:        "Data",
				Tags:            []string{"PostgreSQL", "Database", "SQL"},
				Level:           model.LevelIntermediate,
				Rating:          4.5,
				EnrollmentCount: 980,
			},
			{
				Title:           "UI/UX 设计原则",
				Category:        "Design",
				Tags:            []string{"Figma", "Design", "Prototyping"},
				Level:           model.LevelBeginner,
				Rating:          4.4,
				EnrollmentCount: 760,
				IsNew:           true,
			},
		}
		for _, item := range defaultCatalog {
			db.Create(&item)
		}
	}

	seedDemoUsers(db)

	return db, nil
}

// seedDemoUsers 插入演示账号：一个管理员、一个带完整画像的学员
func seedDemoUsers(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		return
	}

	adminPassword, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return
	}
	admin := model.User{
		Name:     "管理员",
		Email:    "admin@learnhub.local",
		Password: string(adminPassword),
		Role:     model.Admin,
	}
	db.Create(&admin)

	studentPassword, _ := bcrypt.GenerateFromPassword([]byte("student12345"), bcrypt.DefaultCost)
	student := model.User{
		Name:     "演示学员",
		Email:    "student@learnhub.local",
		Password: string(studentPassword),
		Role:     model.Student,
	}
	if err := db.Create(&student).Error; err != nil {
		return
	}

	db.Create(&model.LearnerProfile{
		UserID:         student.ID,
		CompletedItems: []string{"HTML基础", "JavaScript进阶", "React入门"},
		Interests:      []string{"Programming", "Data", "AI", "Design"},
		StrongSkills:   []string{"HTML/CSS", "JavaScript", "React", "Figma"},
		WeakSkills:     []string{"Python", "Data Analysis", "Machine Learning"},
		PreferredLevel: model.LevelIntermediate,
		AvgScore:       88,
		LearningGoal:   "Become a Full-Stack Developer",
	})
}
