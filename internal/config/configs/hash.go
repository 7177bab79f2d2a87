package configs

// Hash configures owner hashing.
type Hash struct {
	// Cost is the bcrypt work factor.
	Cost int `env:"COST" envDefault:"10"`
}
