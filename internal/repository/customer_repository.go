package repository

import (
	"context"
	"errors"

	"pos/internal/domain/model"
)

// NRC重複（unique制約違反）を統一
var ErrDuplicate = errors.New("duplicate")

// 顧客の永続化（保存・取得）だけを約束。
type CustomerRepository interface {
	// NRC完全一致で1件取得。見つからなければErrNotFound。
	FindByNRC(ctx context.Context, nrc string) (model.Customer, error)

	// 新規顧客作成。NRC重複はErrDuplicate。
	Create(ctx context.Context, c model.Customer) (model.Customer, error)

	// 登録日時の新しい順
	List(ctx context.Context) ([]model.Customer, error)
}
