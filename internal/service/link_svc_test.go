package service

import (
	"net/url"
	"strings"
	"testing"
)

// ==================== 站内路径 ====================

func TestInternalURL(t *testing.T) {
	got := InternalURL("/shops/acme", "widget-42")
	if got != "/shops/acme/widget-42" {
		t.Errorf("InternalURL = %q", got)
	}
}

// ==================== 跳转链接 ====================

func TestTrackedURL_Format(t *testing.T) {
	internal := InternalURL("/shops/acme", "widget-42")
	got := TrackedURL(internal, "https://a&b.example/?x=1")
	want := "/shops/acme/widget-42/to?website&url=https%3A%2F%2Fa%26b.example%2F%3Fx%3D1"
	if got != want {
		t.Errorf("TrackedURL = %q, 期望 %q", got, want)
	}
}

func TestTrackedURL_RoundTrip(t *testing.T) {
	// url 参数解码后必须还原出原始外链
	outbounds := []string{
		"https://www.amazon.com/dp/B0123?tag=aff-20",
		"https://a&b.example/?x=1",
		"https://example.com/path with space/?q=a+b&r=c%20d",
		"https://example.com/日本語/ページ",
		"https://example.com/?empty=&flag",
	}
	for _, outbound := range outbounds {
		tracked := TrackedURL("/shops/acme/widget-42", outbound)

		idx := strings.Index(tracked, "?")
		if idx < 0 {
			t.Fatalf("跳转链接缺少查询串: %q", tracked)
		}
		values, err := url.ParseQuery(tracked[idx+1:])
		if err != nil {
			t.Fatalf("查询串解析失败: %v", err)
		}
		if _, ok := values["website"]; !ok {
			t.Errorf("跳转链接缺少 website 标记: %q", tracked)
		}
		if got := values.Get("url"); got != outbound {
			t.Errorf("url 参数往返失败: got %q, want %q", got, outbound)
		}
	}
}

// ==================== 绝对地址 ====================

func TestCanonicalURL(t *testing.T) {
	svc := NewLinkService("https://shopdir.example", nil)
	got := svc.CanonicalURL("/shops/acme/widget-42")
	if got != "https://shopdir.example/shops/acme/widget-42" {
		t.Errorf("CanonicalURL = %q", got)
	}
}
