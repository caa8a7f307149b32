package catalog

// Seed builds the default storefront catalog. Prices are in UAH.
func Seed() *Catalog {
	c := New()

	sizeOption := func(choices ...Choice) Option {
		return Option{
			Key:     "size",
			Label:   Text{UK: "Розмір", RU: "Размер"},
			Choices: choices,
			Default: choices[0].Value,
		}
	}

	c.Add(&Product{
		ID:       "canvas-print",
		Category: CategoryCanvas,
		Name:     Text{UK: "Друк на полотні", RU: "Печать на холсте"},
		Description: Text{
			UK: "Фотодрук на натуральному полотні з галерейною натяжкою",
			RU: "Фотопечать на натуральном холсте с галерейной натяжкой",
		},
		BasePrice: 450,
		Options: []Option{
			sizeOption(
				Choice{Value: "30x40", Label: Text{UK: "30×40 см", RU: "30×40 см"}, PriceDelta: 0},
				Choice{Value: "40x60", Label: Text{UK: "40×60 см", RU: "40×60 см"}, PriceDelta: 200},
				Choice{Value: "60x90", Label: Text{UK: "60×90 см", RU: "60×90 см"}, PriceDelta: 550},
			),
			{
				Key:   "edge",
				Label: Text{UK: "Оформлення краю", RU: "Оформление края"},
				Choices: []Choice{
					{Value: "gallery", Label: Text{UK: "Галерейна натяжка", RU: "Галерейная натяжка"}, PriceDelta: 0},
					{Value: "mirror", Label: Text{UK: "Дзеркальний край", RU: "Зеркальный край"}, PriceDelta: 50},
				},
				Default: "gallery",
			},
		},
	})

	c.Add(&Product{
		ID:       "acrylic-print",
		Category: CategoryAcrylic,
		Name:     Text{UK: "Друк на акрилі", RU: "Печать на акриле"},
		Description: Text{
			UK: "Фото під акриловим склом 5 мм з дистанційним кріпленням",
			RU: "Фото под акриловым стеклом 5 мм с дистанционным креплением",
		},
		BasePrice: 900,
		Options: []Option{
			sizeOption(
				Choice{Value: "30x40", Label: Text{UK: "30×40 см", RU: "30×40 см"}, PriceDelta: 0},
				Choice{Value: "50x70", Label: Text{UK: "50×70 см", RU: "50×70 см"}, PriceDelta: 700},
			),
		},
	})

	c.Add(&Product{
		ID:       "business-cards-standard",
		Category: CategoryBusinessCards,
		Name:     Text{UK: "Візитівки", RU: "Визитки"},
		Description: Text{
			UK: "Візитівки 90×50 мм, щільний картон 350 г/м²",
			RU: "Визитки 90×50 мм, плотный картон 350 г/м²",
		},
		BasePrice: 180,
		Options: []Option{
			{
				Key:   "lamination",
				Label: Text{UK: "Ламінація", RU: "Ламинация"},
				Choices: []Choice{
					{Value: "none", Label: Text{UK: "Без ламінації", RU: "Без ламинации"}, PriceDelta: 0},
					{Value: "matte", Label: Text{UK: "Матова", RU: "Матовая"}, PriceDelta: 60},
					{Value: "glossy", Label: Text{UK: "Глянцева", RU: "Глянцевая"}, PriceDelta: 60},
				},
				Default: "none",
			},
			{
				Key:   "sides",
				Label: Text{UK: "Сторони друку", RU: "Стороны печати"},
				Choices: []Choice{
					{Value: "single", Label: Text{UK: "Односторонні", RU: "Односторонние"}, PriceDelta: 0},
					{Value: "double", Label: Text{UK: "Двосторонні", RU: "Двусторонние"}, PriceDelta: 80},
				},
				Default: "single",
			},
		},
	})

	c.Add(&Product{
		ID:       "stickers-sheet",
		Category: CategoryStickers,
		Name:     Text{UK: "Наліпки", RU: "Наклейки"},
		Description: Text{
			UK: "Вінілові наліпки з контурною порізкою, аркуш А4",
			RU: "Виниловые наклейки с контурной резкой, лист А4",
		},
		BasePrice: 120,
		Options: []Option{
			{
				Key:   "material",
				Label: Text{UK: "Матеріал", RU: "Материал"},
				Choices: []Choice{
					{Value: "vinyl", Label: Text{UK: "Вініл", RU: "Винил"}, PriceDelta: 0},
					{Value: "paper", Label: Text{UK: "Папір", RU: "Бумага"}, PriceDelta: -30},
					{Value: "transparent", Label: Text{UK: "Прозора плівка", RU: "Прозрачная плёнка"}, PriceDelta: 40},
				},
				Default: "vinyl",
			},
		},
	})

	c.Add(&Product{
		ID:       "packaging-box",
		Category: CategoryPackaging,
		Name:     Text{UK: "Коробки з друком", RU: "Коробки с печатью"},
		Description: Text{
			UK: "Самозбірні коробки з логотипом, мікрогофрокартон",
			RU: "Самосборные коробки с логотипом, микрогофрокартон",
		},
		BasePrice: 35,
		Options: []Option{
			sizeOption(
				Choice{Value: "small", Label: Text{UK: "Мала", RU: "Малая"}, PriceDelta: 0},
				Choice{Value: "medium", Label: Text{UK: "Середня", RU: "Средняя"}, PriceDelta: 15},
				Choice{Value: "large", Label: Text{UK: "Велика", RU: "Большая"}, PriceDelta: 30},
			),
			{
				Key:   "print",
				Label: Text{UK: "Друк", RU: "Печать"},
				Choices: []Choice{
					{Value: "one-color", Label: Text{UK: "Один колір", RU: "Один цвет"}, PriceDelta: 0},
					{Value: "full-color", Label: Text{UK: "Повноколірний", RU: "Полноцветная"}, PriceDelta: 20},
				},
				Default: "one-color",
			},
		},
	})

	return c
}
