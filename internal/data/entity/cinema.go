package entity

type Cinema struct {
	Base
	Name    string `db:"name"`
	Address string `db:"address"`
	City    string `db:"city"`
	ZipCode string `db:"zip_code"`
	Email   string `db:"email"`
}
