package domain

type Address struct {
	ID       uint64
	UserID   uint64
	Label    string
	Address1 string
	Address2 string
	City     string
	State    string
	Zipcode  string
	Country  string
}
