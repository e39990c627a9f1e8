// file: internals/features/workforce/workers/service/import_service.go
package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	helper "pabrikku_backend/internals/helpers"

	m "pabrikku_backend/internals/features/workforce/workers/model"
)

/* =========================================================
   CSV IMPORT — parsing & validasi per baris
   Header wajib: name,cin — opsional: email,phone,role,hired_at
   ========================================================= */

type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportRow struct {
	Line   int
	Worker m.WorkerModel
}

type ImportResult struct {
	Rows   []ImportRow      `json:"-"`
	Errors []ImportRowError `json:"errors"`
}

// ParseWorkersCSV parse file CSV jadi daftar WorkerModel siap insert.
// Baris yang invalid dicatat di Errors (nomor baris mengikuti file, header = baris 1).
func ParseWorkersCSV(r io.Reader) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("gagal membaca header CSV: %w", err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := idx["name"]; !ok {
		return nil, fmt.Errorf("kolom 'name' wajib ada di header CSV")
	}
	if _, ok := idx["cin"]; !ok {
		return nil, fmt.Errorf("kolom 'cin' wajib ada di header CSV")
	}

	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	res := &ImportResult{}
	seenCIN := map[string]int{} // cin → baris pertama (deteksi duplikat dalam file)

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Errors = append(res.Errors, ImportRowError{Line: line, Message: "baris tidak bisa dibaca: " + err.Error()})
			continue
		}

		name := get(rec, "name")
		cin := strings.ToUpper(get(rec, "cin"))
		if name == "" {
			res.Errors = append(res.Errors, ImportRowError{Line: line, Message: "name kosong"})
			continue
		}
		if cin == "" {
			res.Errors = append(res.Errors, ImportRowError{Line: line, Message: "cin kosong"})
			continue
		}
		if first, dup := seenCIN[cin]; dup {
			res.Errors = append(res.Errors, ImportRowError{Line: line, Message: fmt.Sprintf("cin %s duplikat dengan baris %d", cin, first)})
			continue
		}

		role := strings.ToLower(get(rec, "role"))
		if role == "" {
			role = string(m.WorkerRoleOperator)
		}
		if !m.ValidWorkerRole(role) {
			res.Errors = append(res.Errors, ImportRowError{Line: line, Message: "role tidak dikenal: " + role})
			continue
		}

		w := m.WorkerModel{
			WorkerName: name,
			WorkerCIN:  cin,
			WorkerRole: m.WorkerRole(role),
		}
		if email := strings.ToLower(get(rec, "email")); email != "" {
			if !strings.Contains(email, "@") {
				res.Errors = append(res.Errors, ImportRowError{Line: line, Message: "email tidak valid: " + email})
				continue
			}
			w.WorkerEmail = &email
		}
		if phone := get(rec, "phone"); phone != "" {
			w.WorkerPhone = &phone
		}
		if raw := get(rec, "hired_at"); raw != "" {
			t, err := helper.ParseDateYMD(raw)
			if err != nil {
				res.Errors = append(res.Errors, ImportRowError{Line: line, Message: "hired_at tidak valid: " + raw})
				continue
			}
			hired := t
			w.WorkerHiredAt = &hired
		}

		seenCIN[cin] = line
		res.Rows = append(res.Rows, ImportRow{Line: line, Worker: w})
	}

	return res, nil
}
