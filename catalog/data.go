package catalog

import "tablecomm/models"

var responses = []models.QuickResponse{
	{
		ID:       "billing-1",
		Category: models.CategoryBilling,
		Title:    "お会計はテーブルです",
		ContentTranslations: models.ContentTranslations{
			JA: "お会計はこちらのテーブルでお願いします。",
			EN: "Please pay at this table.",
			ES: "Por favor, pague en esta mesa.",
		},
		ImageURL: "/images/table-payment.svg",
	},
	{
		ID:       "billing-2",
		Category: models.CategoryBilling,
		Title:    "クレジットカードOK",
		ContentTranslations: models.ContentTranslations{
			JA: "クレジットカードでのお支払いが可能です。",
			EN: "Credit cards are accepted.",
			ES: "Aceptamos tarjetas de crédito.",
		},
	},
	{
		ID:       "billing-3",
		Category: models.CategoryBilling,
		Title:    "領収書が必要ですか？",
		ContentTranslations: models.ContentTranslations{
			JA: "領収書をお出ししますか？",
			EN: "Would you like a receipt?",
			ES: "¿Quiere un recibo?",
		},
	},
	{
		ID:       "allergy-1",
		Category: models.CategoryAllergy,
		Title:    "アレルギー対応できますか？",
		ContentTranslations: models.ContentTranslations{
			JA: "アレルギー対応メニューをご用意しております。",
			EN: "We have allergy-friendly menu options.",
			ES: "Tenemos opciones de menú aptas para alérgicos.",
		},
	},
	{
		ID:       "allergy-2",
		Category: models.CategoryAllergy,
		Title:    "この料理にアレルギー成分は？",
		ContentTranslations: models.ContentTranslations{
			JA: "この料理には以下のアレルギー成分が含まれています。",
			EN: "This dish contains the following allergens.",
			ES: "Este plato contiene los siguientes alérgenos.",
		},
	},
	{
		ID:       "allergy-3",
		Category: models.CategoryAllergy,
		Title:    "特別な対応をお願いします",
		ContentTranslations: models.ContentTranslations{
			JA: "特別なアレルギー対応をお願いできますか？",
			EN: "Can we accommodate special allergy needs?",
			ES: "¿Podemos acomodar necesidades especiales de alergia?",
		},
	},
	{
		ID:       "how-to-eat-1",
		Category: models.CategoryHowToEat,
		Title:    "この料理の食べ方",
		ContentTranslations: models.ContentTranslations{
			JA: "この料理は手で召し上がってください。",
			EN: "Please eat this dish with your hands.",
			ES: "Por favor, coma este plato con las manos.",
		},
		ImageURL: "/images/how-to-eat.svg",
	},
	{
		ID:       "how-to-eat-2",
		Category: models.CategoryHowToEat,
		Title:    "スープの飲み方",
		ContentTranslations: models.ContentTranslations{
			JA: "スープは直接お椀からお飲みください。",
			EN: "Please drink the soup directly from the bowl.",
			ES: "Por favor, beba la sopa directamente del tazón.",
		},
	},
	{
		ID:       "how-to-eat-3",
		Category: models.CategoryHowToEat,
		Title:    "箸の使い方",
		ContentTranslations: models.ContentTranslations{
			JA: "箸の使い方をお手伝いしましょうか？",
			EN: "Would you like help with chopsticks?",
			ES: "¿Le gustaría ayuda con los palillos?",
		},
	},
	{
		ID:       "other-1",
		Category: models.CategoryOther,
		Title:    "お手洗いはこちらです",
		ContentTranslations: models.ContentTranslations{
			JA: "お手洗いはこちらの方向です。",
			EN: "The restroom is in this direction.",
			ES: "El baño está en esta dirección.",
		},
		ImageURL: "/images/restroom.svg",
	},
	{
		ID:       "other-2",
		Category: models.CategoryOther,
		Title:    "おすすめメニューは？",
		ContentTranslations: models.ContentTranslations{
			JA: "本日のおすすめはこちらです。",
			EN: "Today's recommendation is this.",
			ES: "La recomendación de hoy es esta.",
		},
	},
	{
		ID:       "other-3",
		Category: models.CategoryOther,
		Title:    "写真撮影OKです",
		ContentTranslations: models.ContentTranslations{
			JA: "料理の写真撮影はOKです。",
			EN: "Taking photos of food is okay.",
			ES: "Tomar fotos de la comida está bien.",
		},
	},
	{
		ID:       "other-4",
		Category: models.CategoryOther,
		Title:    "貸し切りで入れません",
		ContentTranslations: models.ContentTranslations{
			JA: "今日貸し切りで、入れません。テイクアウトならできますよ。",
			EN: "We are closed for a private event today. Takeout is available.",
			ES: "Hoy estamos cerrados para un evento privado. El takeout está disponible.",
		},
		ImageURL: "/images/closed-event.svg",
	},
	{
		ID:       "other-5",
		Category: models.CategoryOther,
		Title:    "テイクアウト可能",
		ContentTranslations: models.ContentTranslations{
			JA: "テイクアウトは、ピザならできますよ。",
			EN: "Takeout is available for pizza.",
			ES: "El takeout está disponible para pizza.",
		},
		ImageURL: "/images/takeout-pizza.svg",
	},
}
