package service

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ==================== 域名解析与按钮展示 ====================

// 品牌名常量
const (
	BrandChewy        = "Chewy.com"
	BrandBarnesNoble  = "Barnes & Noble"
	BrandAmazon       = "Amazon.com"
	BrandEtsy         = "Etsy.com"
	DefaultButtonText = "Buy Now"
)

// brandOverrides 域名 -> 品牌名 覆盖表
// 在通用首字母大写规则之前命中
var brandOverrides = map[string]string{
	// 联盟跳转域，经由它的流量全部指向 Chewy，与路径/参数无关
	"prf.hn": BrandChewy,
	// 品牌名本身带 "&"，不能走首字母大写规则
	"barnesandnoble.com": BrandBarnesNoble,
}

// buttonClasses 品牌名 -> 按钮样式表
// 未命中一律回落到 primary
var buttonClasses = map[string]string{
	BrandAmazon:      "amazon",
	BrandBarnesNoble: "bn",
	BrandChewy:       "chewy",
	BrandEtsy:        "etsy",
}

const defaultButtonClass = "primary"

// ResolveDomain 从商品外链解析出展示用品牌名
// 解析失败返回空串，不报错；同一输入永远返回同一输出
func ResolveDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}

	// 取注册域 (www.example.co.uk -> example.co.uk)
	// 公共后缀判定失败时退化为去掉 www 前缀的完整 host
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		domain = strings.TrimPrefix(host, "www.")
	}
	if domain == "" {
		return ""
	}

	if brand, ok := brandOverrides[domain]; ok {
		return brand
	}
	return titleizeDomain(domain)
}

// titleizeDomain 按空格分词后每个词首字母大写
// 域名没有空格，效果上就是整串首字母大写：example.com -> Example.com
func titleizeDomain(domain string) string {
	words := strings.Fields(domain)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ButtonText 购买按钮文案
// Barnes & Noble 习惯用 "at"，其余品牌用 "on"
// 域名解析不出来时给中性文案，避免渲染出 "Buy on "
func ButtonText(domain string) string {
	switch domain {
	case "":
		return DefaultButtonText
	case BrandBarnesNoble:
		return "Buy at " + BrandBarnesNoble
	default:
		return "Buy on " + domain
	}
}

// ButtonClass 购买按钮样式标识
func ButtonClass(domain string) string {
	if class, ok := buttonClasses[domain]; ok {
		return class
	}
	return defaultButtonClass
}
