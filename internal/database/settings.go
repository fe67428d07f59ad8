package database

import "context"

const getCompanySettings = `
SELECT name, address, phone, logo FROM company_settings WHERE id = 1
`

// GetCompanySettings returns the single configuration row. Callers map
// pgx.ErrNoRows to their built-in defaults.
func (q *Queries) GetCompanySettings(ctx context.Context) (CompanySettings, error) {
	var s CompanySettings
	err := q.db.QueryRow(ctx, getCompanySettings).Scan(&s.Name, &s.Address, &s.Phone, &s.Logo)
	return s, err
}

const upsertCompanySettings = `
INSERT INTO company_settings (id, name, address, phone, logo)
VALUES (1, $1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name, address = EXCLUDED.address,
    phone = EXCLUDED.phone, logo = EXCLUDED.logo
`

type UpsertCompanySettingsParams struct {
	Name    string
	Address string
	Phone   string
	Logo    string
}

func (q *Queries) UpsertCompanySettings(ctx context.Context, arg UpsertCompanySettingsParams) error {
	_, err := q.db.Exec(ctx, upsertCompanySettings, arg.Name, arg.Address, arg.Phone, arg.Logo)
	return err
}
