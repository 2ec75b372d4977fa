package directory

type Entry struct {
	CompanyName string
	Country     string
	Category    string
	Keywords    []string
}
