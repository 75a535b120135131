package sqlite

import "testing"

func TestDriverSelection(t *testing.T) {
	info := GetInfo()
	if info.DriverName != DriverName() || info.DriverType != DriverType() {
		t.Errorf("GetInfo() = %+v, inconsistent with accessors", info)
	}
	switch info.DriverType {
	case "purego":
		if info.DriverName != "sqlite" || info.IsCGO {
			t.Errorf("purego build reports %+v", info)
		}
	case "cgo":
		if info.DriverName != "sqlite3" || !info.IsCGO {
			t.Errorf("cgo build reports %+v", info)
		}
	default:
		t.Errorf("unknown driver type %q", info.DriverType)
	}
}

func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE t (id TEXT PRIMARY KEY)`); err != nil {
		t.Fatalf("exec error: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO t (id) VALUES ('a')`); err != nil {
		t.Fatalf("insert error: %v", err)
	}
	var id string
	if err := db.QueryRow(`SELECT id FROM t`).Scan(&id); err != nil || id != "a" {
		t.Fatalf("scan = %q, %v", id, err)
	}
}
