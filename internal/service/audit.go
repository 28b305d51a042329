// File: internal/service/audit.go
package service

import (
	"context"
	"time"

	"ecomarket/internal/database"
	"ecomarket/internal/model"
	"ecomarket/internal/store"
	"ecomarket/internal/worker"

	"github.com/sirupsen/logrus"
)

const auditWriteTimeout = 5 * time.Second

var insertAuthEvent = store.InsertAuthEvent

// AuditRecorder 透過 worker pool 非同步寫入登入/註冊紀錄
type AuditRecorder struct {
	pool worker.Pool
	db   database.DB
	log  logrus.FieldLogger
}

func NewAuditRecorder(pool worker.Pool, db database.DB, log logrus.FieldLogger) *AuditRecorder {
	return &AuditRecorder{pool: pool, db: db, log: log}
}

// Record 排入寫入工作，不等待結果；佇列已滿時直接丟棄
func (a *AuditRecorder) Record(ev model.AuthEvent) {
	fields := logrus.Fields{"kind": ev.Kind, "username": ev.Username, "success": ev.Success}
	if ev.Reason != "" {
		fields["reason"] = ev.Reason
	}
	a.log.WithFields(fields).Info("auth event")

	ok := a.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := insertAuthEvent(ctx, a.db, &ev); err != nil {
			a.log.WithError(err).WithFields(fields).Error("failed to store auth event")
		}
	})
	if !ok {
		a.log.WithFields(fields).Warn("worker pool full or stopped, auth event dropped")
	}
}
