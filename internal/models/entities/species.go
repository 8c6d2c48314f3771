package entities

type Species struct {
	ID         int64   `db:"id"`
	Name       string  `db:"name"`
	CommonName *string `db:"common_name"`
	Image      []byte  `db:"image"`
}
