package service

import (
	"testing"
)

// ==================== 域名解析 ====================

func TestResolveDomain_AffiliateOverride(t *testing.T) {
	// prf.hn 联盟域，无论路径/参数如何都归到 Chewy
	urls := []string{
		"https://prf.hn/click/xyz",
		"https://prf.hn/click/camref:1100abc/destination:https://www.chewy.com/dp/123",
		"http://prf.hn/",
		"https://prf.hn/a/b/c?utm_source=email&x=1",
	}
	for _, u := range urls {
		if got := ResolveDomain(u); got != "Chewy.com" {
			t.Errorf("ResolveDomain(%q) = %q, 期望 Chewy.com", u, got)
		}
	}
}

func TestResolveDomain_BarnesNoble(t *testing.T) {
	got := ResolveDomain("https://www.barnesandnoble.com/w/book")
	if got != "Barnes & Noble" {
		t.Errorf("ResolveDomain = %q, 期望 Barnes & Noble", got)
	}
}

func TestResolveDomain_TitleCaseFallback(t *testing.T) {
	cases := map[string]string{
		"https://www.amazon.com/dp/B0123":      "Amazon.com",
		"https://www.etsy.com/listing/123":     "Etsy.com",
		"https://example.com/path?q=1":         "Example.com",
		"https://shop.example.co.uk/item":      "Example.co.uk",
		"https://www.target.com/p/some-thing/": "Target.com",
	}
	for rawURL, want := range cases {
		if got := ResolveDomain(rawURL); got != want {
			t.Errorf("ResolveDomain(%q) = %q, 期望 %q", rawURL, got, want)
		}
	}
}

func TestResolveDomain_Unparseable(t *testing.T) {
	// 解析不出 host 的输入一律返回空串，不 panic 不报错
	cases := []string{
		"",
		"not a url",
		"/relative/path/only",
		"mailto:someone@example.com",
		"://bad",
	}
	for _, rawURL := range cases {
		if got := ResolveDomain(rawURL); got != "" {
			t.Errorf("ResolveDomain(%q) = %q, 期望空串", rawURL, got)
		}
	}
}

func TestResolveDomain_Deterministic(t *testing.T) {
	rawURL := "https://www.barnesandnoble.com/w/book"
	first := ResolveDomain(rawURL)
	for i := 0; i < 100; i++ {
		if got := ResolveDomain(rawURL); got != first {
			t.Fatalf("第 %d 次调用结果 %q 与首次 %q 不一致", i, got, first)
		}
	}
}

// ==================== 按钮文案与样式 ====================

func TestButtonText(t *testing.T) {
	cases := map[string]string{
		"Barnes & Noble": "Buy at Barnes & Noble",
		"Chewy.com":      "Buy on Chewy.com",
		"Amazon.com":     "Buy on Amazon.com",
		"Example.com":    "Buy on Example.com",
		"":               "Buy Now",
	}
	for domain, want := range cases {
		if got := ButtonText(domain); got != want {
			t.Errorf("ButtonText(%q) = %q, 期望 %q", domain, got, want)
		}
	}
}

func TestButtonClass(t *testing.T) {
	cases := map[string]string{
		"Amazon.com":     "amazon",
		"Barnes & Noble": "bn",
		"Chewy.com":      "chewy",
		"Etsy.com":       "etsy",
		"Example.com":    "primary",
		"Target.com":     "primary",
		"":               "primary",
	}
	for domain, want := range cases {
		if got := ButtonClass(domain); got != want {
			t.Errorf("ButtonClass(%q) = %q, 期望 %q", domain, got, want)
		}
	}
}

// ==================== 端到端派生链 ====================

func TestDerivationChain_Chewy(t *testing.T) {
	// 场景：联盟链接 -> Chewy 品牌 -> chewy 按钮
	domain := ResolveDomain("https://prf.hn/click/xyz")
	if domain != "Chewy.com" {
		t.Fatalf("domain = %q, 期望 Chewy.com", domain)
	}
	if got := ButtonText(domain); got != "Buy on Chewy.com" {
		t.Errorf("ButtonText = %q", got)
	}
	if got := ButtonClass(domain); got != "chewy" {
		t.Errorf("ButtonClass = %q", got)
	}
}

func TestDerivationChain_BarnesNoble(t *testing.T) {
	domain := ResolveDomain("https://www.barnesandnoble.com/w/book")
	if got := ButtonText(domain); got != "Buy at Barnes & Noble" {
		t.Errorf("ButtonText = %q", got)
	}
	if got := ButtonClass(domain); got != "bn" {
		t.Errorf("ButtonClass = %q", got)
	}
}
