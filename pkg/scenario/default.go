package scenario

// Crossroads - встроенный сценарий: дорога через поле, грязь дороже, транспорт с водителем.
//
//	y\x 0 1 2 3 4 5
//	 0  . . ~ ~ . .
//	 1  = = = = = =   (дорога)
//	 2  . # . ~ . .
//	 3  . . . . . .
func Crossroads() *Scenario {
	b := NewGrid(6, 4).
		WithName("crossroads").
		WithCost(2, 0, 3).
		WithCost(3, 0, 3).
		WithCost(3, 2, 3).
		Block(1, 2).
		SpawnCharacter("scout", 0, 3, 3).
		SpawnCharacter("medic", 5, 3, 2).
		SpawnVehicle("meatwagon", "driver", 0, 1, 4)

	s, err := b.Build()
	if err != nil {
		// Встроенный сценарий статичен, ошибка здесь - ошибка программиста
		panic("crossroads scenario is invalid: " + err.Error())
	}

	// Дорога: отдельная группа с дальними связями вдоль оси
	for i := range s.Tiles {
		if s.Tiles[i].Y == 1 {
			s.Tiles[i].Group = "road"
		}
	}
	s.Connect = append(s.Connect, ConnectDef{Radius: 2.0, Group: "road"})
	return s
}
