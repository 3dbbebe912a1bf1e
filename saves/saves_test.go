package saves

import (
	"errors"
	"testing"

	"github.com/automoto/herbclinic/shared/messages"
)

func list(ids ...string) []messages.PlayerRecord {
	out := make([]messages.PlayerRecord, len(ids))
	for i, id := range ids {
		out[i] = messages.PlayerRecord{ID: id}
	}
	return out
}

func TestRefreshTips(t *testing.T) {
	b := NewBook(6)
	b.BeginRefresh()
	if b.Tip != "正在加载存档..." {
		t.Fatalf("unexpected tip %q", b.Tip)
	}
	b.FinishRefresh(nil, errors.New("offline"))
	if b.Tip != "加载失败" || b.Loaded() {
		t.Fatalf("unexpected state after failure: tip=%q loaded=%v", b.Tip, b.Loaded())
	}
	b.FinishRefresh(list("a", "b"), nil)
	if b.Tip != "已有存档: 2/6" {
		t.Fatalf("unexpected tip %q", b.Tip)
	}
	if b.ConfirmEnabled() || b.DeleteEnabled {
		t.Fatal("buttons must stay disabled without a selection")
	}
}

func TestCreateBlockedWhenFull(t *testing.T) {
	b := NewBook(6)
	b.FinishRefresh(list("1", "2", "3", "4", "5", "6"), nil)

	if err := b.CanOpenCreate(); !errors.Is(err, ErrSlotsFull) {
		t.Fatalf("expected ErrSlotsFull, got %v", err)
	}
	if b.Tip != "存档已满(上限6个)" {
		t.Fatalf("unexpected tip %q", b.Tip)
	}
}

func TestCreateValidation(t *testing.T) {
	b := NewBook(6)
	b.FinishRefresh(list("1"), nil)
	if err := b.ValidateCreate(""); !errors.Is(err, ErrEmptyNickname) {
		t.Fatalf("expected ErrEmptyNickname, got %v", err)
	}
	if err := b.ValidateCreate("阿青"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if b.FinishCreate(errors.New("x"), "昵称已存在") {
		t.Fatal("failed create must keep panel open")
	}
	if b.Tip != "创建失败: 昵称已存在" {
		t.Fatalf("unexpected tip %q", b.Tip)
	}
}

func TestSelectDeleteFlow(t *testing.T) {
	b := NewBook(6)
	b.FinishRefresh(list("a", "b"), nil)

	if _, err := b.BeginDelete(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if err := b.Select("zzz"); !errors.Is(err, ErrUnknownSave) {
		t.Fatalf("expected ErrUnknownSave, got %v", err)
	}
	if err := b.Select("b"); err != nil {
		t.Fatal(err)
	}
	if !b.ConfirmEnabled() || !b.DeleteEnabled {
		t.Fatal("selection should enable confirm and delete")
	}

	id, err := b.BeginDelete()
	if err != nil || id != "b" {
		t.Fatalf("BeginDelete = %q, %v", id, err)
	}
	if b.DeleteEnabled || b.Tip != "正在删除..." {
		t.Fatal("delete button should be disabled while deleting")
	}

	if b.FinishDelete(errors.New("x"), "") {
		t.Fatal("failed delete must not refresh")
	}
	if !b.DeleteEnabled || b.Tip != "删除失败: 未知错误" {
		t.Fatalf("unexpected state after failed delete: %+v", b)
	}

	b.BeginDelete()
	if !b.FinishDelete(nil, "") {
		t.Fatal("successful delete should refresh")
	}
	if b.Selected() != "" || b.ConfirmEnabled() || b.DeleteEnabled {
		t.Fatal("successful delete must clear the selection")
	}
}

func TestRefreshDropsVanishedSelection(t *testing.T) {
	b := NewBook(6)
	b.FinishRefresh(list("a"), nil)
	_ = b.Select("a")
	b.FinishRefresh(list("b"), nil)
	if b.Selected() != "" {
		t.Fatal("selection of a removed save must be cleared")
	}
}

func TestConfirm(t *testing.T) {
	b := NewBook(6)
	b.FinishRefresh(list("a"), nil)
	if _, err := b.Confirm(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	_ = b.Select("a")
	id, err := b.Confirm()
	if err != nil || id != "a" || b.Tip != "正在进入医馆..." {
		t.Fatalf("Confirm = %q, %v, tip %q", id, err, b.Tip)
	}
}
