// 手动导入课程目录脚本
//
// 应用启动时只在目录为空的情况下写入演示数据。
// 运营侧批量上新课程时用本脚本从 YAML 文件导入。
//
// 用法: go run scripts/import_catalog.go [目录文件，默认 scripts/catalog.yaml]

package main

import (
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/database"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Items []struct {
		Title           string   `yaml:"title"`
		Category        string   `yaml:"category"`
		Tags            []string `yaml:"tags"`
		Level           string   `yaml:"level"`
		Rating          float64  `yaml:"rating"`
		EnrollmentCount int      `yaml:"enrollment_count"`
		IsNew           bool     `yaml:"is_new"`
		IsTrending      bool     `yaml:"is_trending"`
	} `yaml:"items"`
}

func main() {
	path := "scripts/catalog.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("无法读取目录文件 %s: %v", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.Fatalf("解析目录文件失败: %v", err)
	}
	if len(file.Items) == 0 {
		log.Fatalf("目录文件 %s 中没有课程条目", path)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	imported := 0
	for _, entry := range file.Items {
		item := model.CatalogItem{
			Title:           entry.Title,
			Category:        entry.Category,
			Tags:            entry.Tags,
			Level:           model.CourseLevel(entry.Level),
			Rating:          entry.Rating,
			EnrollmentCount: entry.EnrollmentCount,
			IsNew:           entry.IsNew,
			IsTrending:      entry.IsTrending,
		}
		if err := db.Create(&item).Error; err != nil {
			log.Printf("导入《%s》失败: %v", entry.Title, err)
			continue
		}
		imported++
	}

	log.Printf("导入完成: %d/%d 条课程", imported, len(file.Items))
}
