package marketplace

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ==================== Etsy 开放平台客户端 ====================

const defaultBaseURL = "https://openapi.etsy.com"

// Client 只读的 Etsy listing 客户端
// 目前只用于图片回填，不涉及店铺授权，走 api key 即可
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
}

// NewClient 创建客户端，配置统一超时与 UA
func NewClient(apiKey string) *Client {
	http := resty.New().
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", "ShopDir-Go-App/1.0")

	return &Client{
		http:    http,
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// SetBaseURL 替换接口地址（测试用）
func (c *Client) SetBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// ListingImages 拉取 listing 的图片列表
// 接口文档: /v3/application/listings/{listing_id}/images
func (c *Client) ListingImages(ctx context.Context, listingID int64) ([]ListingImage, error) {
	apiUrl := fmt.Sprintf("%s/v3/application/listings/%d/images", c.baseURL, listingID)

	var res ListingImagesResp
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-api-key", c.apiKey).
		SetResult(&res).
		Get(apiUrl)

	if err != nil {
		return nil, fmt.Errorf("网络请求失败: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API 异常 [%d]: %s", resp.StatusCode(), resp.String())
	}

	return res.Results, nil
}
