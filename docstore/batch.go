package docstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type batchOp struct {
	path   string
	id     string
	body   map[string]interface{} // nil means delete
	create bool                   // server-assigned id, body must be non-nil
}

// WriteBatch collects document writes and deletes and commits them in one
// transaction: either every op applies or none does.
type WriteBatch struct {
	store *Store
	ops   []batchOp
}

// Batch starts an empty write batch.
func (s *Store) Batch() *WriteBatch {
	return &WriteBatch{store: s}
}

// Set queues a full overwrite of (path, id).
func (b *WriteBatch) Set(path, id string, body map[string]interface{}) *WriteBatch {
	b.ops = append(b.ops, batchOp{path: path, id: id, body: body})
	return b
}

// Create queues an insert with a server-assigned id.
func (b *WriteBatch) Create(path string, body map[string]interface{}) *WriteBatch {
	b.ops = append(b.ops, batchOp{path: path, body: body, create: true})
	return b
}

// Delete queues removal of (path, id).
func (b *WriteBatch) Delete(path, id string) *WriteBatch {
	b.ops = append(b.ops, batchOp{path: path, id: id, body: nil})
	return b
}

// Commit applies every queued op inside one transaction and, on success,
// notifies subscribers of every touched path. On any failure the whole
// batch rolls back and nothing is delivered.
func (b *WriteBatch) Commit() error {
	if len(b.ops) == 0 {
		return nil
	}
	err := b.store.db.Transaction(func(tx *gorm.DB) error {
		for _, op := range b.ops {
			if op.body == nil {
				if err := tx.Where("path = ? AND doc_id = ?", op.path, op.id).Delete(&documentRow{}).Error; err != nil {
					return err
				}
				continue
			}
			id := op.id
			if op.create {
				id = newDocID()
			}
			row, err := encodeRow(op.path, id, op.body)
			if err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &WriteError{Path: b.ops[0].path, Err: err}
	}

	touched := map[string]bool{}
	for _, op := range b.ops {
		if !touched[op.path] {
			touched[op.path] = true
			b.store.hub.notify(b.store, op.path)
		}
	}
	return nil
}
