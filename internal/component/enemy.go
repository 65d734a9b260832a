package component

// Enemy — обезьяна-защитник внутри крепости.
type Enemy struct {
	DefID   string // ключ в каталоге врагов
	Species string
	Size    string
}
