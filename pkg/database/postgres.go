package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopdir_dev_v1_202608/internal/model"
)

// InitDB 初始化数据库连接并完成迁移
// dsn: 数据库连接字符串
func InitDB(dsn string) *gorm.DB {
	// 开发环境下打印所有 SQL，方便调试
	dbLogger := logger.Default.LogMode(logger.Info)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		log.Fatalf("数据库连接失败 (Database Connection Failed): %v", err)
	}

	// 连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("获取底层 SQL DB 失败: %v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("数据库连接成功 (Database Connected Successfully)")

	Migrate(db)
	return db
}

// Migrate 注册连接表并迁移全部模型
// 收藏的 many2many 复用 Favorite 模型做连接表，必须在迁移前声明
func Migrate(db *gorm.DB) {
	if err := db.SetupJoinTable(&model.ShopItem{}, "FavoritedBy", &model.Favorite{}); err != nil {
		log.Fatalf("注册收藏连接表出错: %v", err)
	}

	err := db.AutoMigrate(
		// 用户
		&model.SysUser{},
		// 店铺
		&model.Shop{}, &model.ShopCategory{},
		// 商品
		&model.ShopItem{}, &model.ItemPhoto{}, &model.ItemStat{},
		// 收藏/心愿单
		&model.Favorite{}, &model.Wishlist{},
		// 索引 outbox
		&model.IndexDoc{},
	)
	if err != nil {
		log.Fatalf("自动建表出错： %v", err)
	}
}
