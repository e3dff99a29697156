package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"shopdir_dev_v1_202608/internal/controller"
	"shopdir_dev_v1_202608/internal/middleware"
	"shopdir_dev_v1_202608/internal/repository"
	"shopdir_dev_v1_202608/internal/router"
	"shopdir_dev_v1_202608/internal/service"
	"shopdir_dev_v1_202608/internal/task"
	"shopdir_dev_v1_202608/pkg/database"
	"shopdir_dev_v1_202608/pkg/marketplace"
)

func main() {
	// 1. 初始化数据库
	db := database.InitDB(getEnv("DATABASE_DSN",
		"host=localhost user=shopdir password=shopdir dbname=shopdir port=5432 sslmode=disable"))

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动后台任务
	deps.Tasks.Start()
	defer deps.Tasks.Stop()

	// 4. 跳转限流器的条目定期清理
	go func() {
		for range time.Tick(time.Hour) {
			middleware.GetLimiter().Cleanup(24 * time.Hour)
		}
	}()

	// 5. 初始化路由并启动服务
	r := router.SetupRouter(deps.Controllers)
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	Tasks       *task.TaskManager
}

// Repositories 仓库集合
type Repositories struct {
	Shop     repository.ShopRepository
	Item     repository.ShopItemRepository
	Stat     repository.ItemStatRepository
	Favorite repository.FavoriteRepository
	Wishlist repository.WishlistRepository
	IndexDoc repository.IndexDocRepository
}

// Services 服务集合
type Services struct {
	Link     *service.LinkService
	Item     *service.ItemService
	Favorite *service.FavoriteService
	Index    *service.IndexService
	Photo    *service.PhotoImportService
}

// ==================== 初始化函数 ====================

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Shop:     repository.NewShopRepository(db),
		Item:     repository.NewShopItemRepository(db),
		Stat:     repository.NewItemStatRepository(db),
		Favorite: repository.NewFavoriteRepository(db),
		Wishlist: repository.NewWishlistRepository(db),
		IndexDoc: repository.NewIndexDocRepository(db),
	}

	// -------- 外部客户端 --------
	etsyClient := marketplace.NewClient(getEnv("ETSY_API_KEY", ""))

	// -------- 业务服务 --------
	// 站点根地址，CanonicalURL 用它把站内路径补成绝对地址
	siteBaseURL := getEnv("SITE_BASE_URL", "https://shopdir.local")

	services := &Services{}
	services.Link = service.NewLinkService(siteBaseURL, repos.Stat)
	services.Item = service.NewItemService(repos.Item, repos.Shop, repos.Stat, repos.Favorite, services.Link)
	services.Favorite = service.NewFavoriteService(repos.Favorite, repos.Wishlist)
	services.Index = service.NewIndexService(repos.Item, repos.IndexDoc)
	services.Photo = service.NewPhotoImportService(repos.Item, service.NewEtsyImageClient(etsyClient))

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Item:     controller.NewItemController(services.Item),
		Redirect: controller.NewRedirectController(services.Item, services.Link),
		Favorite: controller.NewFavoriteController(services.Favorite),
		Wishlist: controller.NewWishlistController(services.Favorite),
	}

	// -------- 后台任务 --------
	tasks := task.NewTaskManager(services.Index, services.Photo, task.DefaultConfig())

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
		Tasks:       tasks,
	}
}

// startServer 启动 HTTP 服务并处理优雅退出
func startServer(handler http.Handler) {
	srv := &http.Server{
		Addr:    ":" + getEnv("HTTP_PORT", "8080"),
		Handler: handler,
	}

	go func() {
		log.Printf("HTTP 服务启动，监听 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP 服务异常退出: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("收到退出信号，开始优雅关闭...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("优雅关闭失败: %v", err)
	}
	log.Println("服务已退出")
}

// getEnv 读取环境变量，未设置时返回默认值
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
