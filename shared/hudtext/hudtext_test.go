package hudtext

import (
	"testing"
	"time"

	"github.com/automoto/herbclinic/shared/messages"
)

var names = map[string]string{"clinic_interior": "医馆内堂"}

func TestLocationFromFetchedRecord(t *testing.T) {
	rec := messages.PlayerRecord{LastPosition: messages.Position{MapID: "clinic_interior", X: 10.7, Y: -3.2}}
	if got := Location(names, rec.LastPosition); got != "医馆内堂 (X: 10, Y: -3)" {
		t.Fatalf("unexpected location %q", got)
	}
}

func TestLocationUnknownMapShowsID(t *testing.T) {
	got := Location(names, messages.Position{MapID: "cave", X: 1, Y: 2})
	if got != "cave (X: 1, Y: 2)" {
		t.Fatalf("unexpected location %q", got)
	}
}

func TestStats(t *testing.T) {
	s := StatsOf(messages.PlayerRecord{Nickname: "阿青", Gold: 120, Level: 3, Reputation: 7})
	want := Stats{Name: "阿青", Gold: "120", Level: "等级: 3", Reputation: "声望: 7"}
	if s != want {
		t.Fatalf("got %+v want %+v", s, want)
	}
	if LoadingStats().Name != "加载中..." {
		t.Fatal("unexpected loading placeholder")
	}
}

func TestClockPadsFields(t *testing.T) {
	at := time.Date(2024, 1, 1, 7, 5, 9, 0, time.UTC)
	if got := Clock(at); got != "07:05:09" {
		t.Fatalf("got %q", got)
	}
}

func TestSaveLabels(t *testing.T) {
	if SaveName(messages.PlayerRecord{}) != "无名氏" {
		t.Error("expected fallback nickname")
	}
	if got := SaveInfo(messages.PlayerRecord{Level: 2, Gold: 30}); got != "等级: 2  金币: 30" {
		t.Errorf("got %q", got)
	}
	if got := SaveCount(3, 6); got != "已有存档: 3/6" {
		t.Errorf("got %q", got)
	}
	if got := DeleteFailed(""); got != "删除失败: 未知错误" {
		t.Errorf("got %q", got)
	}
}

func TestPrompts(t *testing.T) {
	if got := Talk("掌柜"); got != "按 F 与掌柜交谈" {
		t.Errorf("got %q", got)
	}
	if got := Talk(""); got != "按 F 交谈" {
		t.Errorf("got %q", got)
	}
	names := map[string]string{"scene_market": "集市"}
	if got := Travel(names, "scene_market"); got != "正在前往集市..." {
		t.Errorf("got %q", got)
	}
}
