// Package hudtext formats the strings shown on labels. Kept free of ebiten
// so the formats can be tested headless.
package hudtext

import (
	"fmt"
	"time"

	"github.com/automoto/herbclinic/shared/gamemath"
	"github.com/automoto/herbclinic/shared/messages"
)

const (
	LoadingName  = "加载中..."
	LoadingGold  = "---"
	LoadingLevel = "-"
	LoadingRep   = "-"

	UnnamedSave     = "无名氏"
	UnknownItem     = "未知物品"
	NoDescription   = "暂无描述"
	SavesLoading    = "正在加载存档..."
	SavesLoadFailed = "加载失败"
	SavesFull       = "存档已满(上限%d个)"
	EnteringClinic  = "正在进入医馆..."
	Deleting        = "正在删除..."
	Deleted         = "存档已删除"
)

// Stats is the set of HUD label strings for one player record.
type Stats struct {
	Name       string
	Gold       string
	Level      string
	Reputation string
}

// LoadingStats is shown until the first record arrives.
func LoadingStats() Stats {
	return Stats{Name: LoadingName, Gold: LoadingGold, Level: LoadingLevel, Reputation: LoadingRep}
}

func StatsOf(rec messages.PlayerRecord) Stats {
	return Stats{
		Name:       rec.Nickname,
		Gold:       fmt.Sprintf("%d", rec.Gold),
		Level:      fmt.Sprintf("等级: %d", rec.Level),
		Reputation: fmt.Sprintf("声望: %d", rec.Reputation),
	}
}

// MapName returns the display name for a map id, or the id itself.
func MapName(names map[string]string, mapID string) string {
	if n, ok := names[mapID]; ok {
		return n
	}
	return mapID
}

// Location renders e.g. "医馆内堂 (X: 10, Y: -3)".
func Location(names map[string]string, pos messages.Position) string {
	return fmt.Sprintf("%s (X: %d, Y: %d)",
		MapName(names, pos.MapID), gamemath.DisplayCoord(pos.X), gamemath.DisplayCoord(pos.Y))
}

// Clock renders the wall clock as HH:MM:SS.
func Clock(t time.Time) string {
	return t.Format("15:04:05")
}

func SaveName(rec messages.PlayerRecord) string {
	if rec.Nickname == "" {
		return UnnamedSave
	}
	return rec.Nickname
}

func SaveInfo(rec messages.PlayerRecord) string {
	return fmt.Sprintf("等级: %d  金币: %d", rec.Level, rec.Gold)
}

func SaveCount(n, max int) string {
	return fmt.Sprintf("已有存档: %d/%d", n, max)
}

func Price(p int) string {
	return fmt.Sprintf("%d文", p)
}

func Count(n int) string {
	return fmt.Sprintf("x%d", n)
}

func Bought(count int, name string) string {
	return fmt.Sprintf("成功购买 %d 个 %s", count, name)
}

func CreateFailed(msg string) string {
	return "创建失败: " + msg
}

func DeleteFailed(msg string) string {
	if msg == "" {
		msg = "未知错误"
	}
	return "删除失败: " + msg
}

// Talk is the prompt shown while standing next to an NPC.
func Talk(name string) string {
	if name == "" {
		return "按 F 交谈"
	}
	return "按 F 与" + name + "交谈"
}

// Travel is the notice shown while a map change is in flight.
func Travel(names map[string]string, mapID string) string {
	return "正在前往" + MapName(names, mapID) + "..."
}
