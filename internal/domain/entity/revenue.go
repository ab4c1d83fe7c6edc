package entity

// Revenue ingreso agregado de un mes. Month es un código corto único (ej. "Jan").
type Revenue struct {
	Month   string `yaml:"month"`
	Revenue int    `yaml:"revenue"`
}
