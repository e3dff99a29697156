package service

import (
	"context"
	"net/url"

	"shopdir_dev_v1_202608/internal/repository"
)

// ==================== 站内链接与出站跳转 ====================

// InternalURL 商品站内路径
// 约定 shopBaseURL 不带尾斜杠、slug 不带头斜杠，其他输入不做兜底
func InternalURL(shopBaseURL, slug string) string {
	return shopBaseURL + "/" + slug
}

// TrackedURL 出站跳转链接
// 形如 {internal}/to?website&url={转义后的外链}
// url 参数按查询参数解码后必须还原出原始外链
func TrackedURL(internalURL, outboundURL string) string {
	return internalURL + "/to?website&url=" + url.QueryEscape(outboundURL)
}

// LinkService 链接服务
// 持有站点根地址配置，负责绝对地址拼接与出站点击记录
type LinkService struct {
	// 站点根地址，如 https://shopdir.example，不带尾斜杠
	siteBaseURL string
	statRepo    repository.ItemStatRepository
}

// NewLinkService 创建链接服务
func NewLinkService(siteBaseURL string, statRepo repository.ItemStatRepository) *LinkService {
	return &LinkService{
		siteBaseURL: siteBaseURL,
		statRepo:    statRepo,
	}
}

// CanonicalURL 站内路径的完整绝对地址（sitemap/分享用）
func (s *LinkService) CanonicalURL(internalURL string) string {
	return s.siteBaseURL + internalURL
}

// RecordClick 记录一次出站点击
func (s *LinkService) RecordClick(ctx context.Context, itemID int64) error {
	return s.statRepo.IncrClick(ctx, itemID)
}
