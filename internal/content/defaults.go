package content

// defaults holds the compiled-in page content. The key set doubles as the
// allowlist for admin saves: keys outside it are silently dropped.
func defaults() map[string]string {
	return map[string]string{
		"site_title":       "Московское Агентство Недвижимости — Петрозаводск, Карелия",
		"site_description": "Агентство недвижимости в Петрозаводске и Республике Карелия. Продажа, покупка, аренда, ипотека. На рынке с 1997 года.",
		"phone":            "+7 (900) 455-10-10",
		"email":            "ptz.man@yandex.ru",
		"address":          "г. Петрозаводск, ул. Ровио, д. 38",
		"schedule":         "Пн-Пт: 10:00 – 18:00",

		"hero_badge":           "На рынке с 1997 года",
		"hero_title":           "Найдём дом вашей",
		"hero_title_highlight": "мечты",
		"hero_lead":            "Профессиональное агентство недвижимости в Петрозаводске и Республике Карелия",
		"hero_cta":             "Найти недвижимость",
		"hero_image":           "hero_bg.jpg",

		"stat_deals":       "1000+",
		"stat_deals_label": "Успешных сделок",
		"stat_clean":       "100%",
		"stat_clean_label": "Юридическая чистота",
		"stat_years":       "27",
		"stat_years_label": "Лет на рынке",

		"about_badge":  "О Компании",
		"about_title":  "Мы знаем, что тепло и уют в Вашем доме – это главное",
		"about_lead":   "27 лет помогаем людям находить дом мечты в Петрозаводске и Республике Карелия",
		"about_p1":     "ООО «Московское агентство недвижимости» в Петрозаводске создавалось для того, чтобы люди могли комфортно, с чувством безопасности и защищенности решать свои вопросы, связанные с недвижимостью.",
		"about_p2":     "Высокие стандарты качества оказания риэлторских услуг – наша ежедневная насущная забота. Надежная команда профессионалов риэлторского дела накопила опыт трудных побед и ответственных решений.",
		"about_quote":  "ПРОФЕССИОНАЛИЗМ И ПОРЯДОЧНОСТЬ – ОСНОВНЫЕ ПРИНЦИПЫ НАШЕЙ РАБОТЫ И СОТРУДНИЧЕСТВА!",
		"about1_image": "about1.jpg",
		"about2_image": "about2.jpg",
		"about3_image": "about3.jpg",

		"services_badge": "Наши Услуги",
		"services_title": "Все сделки с недвижимостью под ключ",
		"services_lead":  "Осуществляем полный спектр риэлторских услуг с гарантией юридической чистоты",

		"gallery_badge":  "Наша Недвижимость",
		"gallery_title":  "Галерея лучших предложений",
		"gallery_lead":   "Актуальные объекты недвижимости в Карелии и за рубежом",
		"gallery1_image": "gallery1.jpg",
		"gallery2_image": "gallery2.jpg",
		"gallery3_image": "gallery3.jpg",
		"gallery4_image": "gallery4.jpg",
		"gallery5_image": "gallery5.jpg",
		"gallery6_image": "gallery6.jpg",

		"cta_title": "Не нашли подходящий вариант?",
		"cta_text":  "Оставьте заявку, и мы подберём идеальную недвижимость за 24 часа",
		"cta_btn":   "Оставить заявку",

		"advantages_badge": "Наши преимущества",
		"advantages_title": "Почему выбирают нас",
		"advantages_lead":  "Одно из ведущих агентств на рынке недвижимости Петрозаводска и Республики Карелия",

		"contact_badge": "Оставьте Заявку",
		"contact_title": "Получите бесплатную консультацию",
		"contact_lead":  "Мы свяжемся с вами в ближайшее время и ответим на все вопросы",

		"partner_title": "Официальный партнёр",
		"partner_text":  "С 2012 года агентство является первым и единственным в Республике Карелия официальным партнёром и аккредитованным представителем «Дрийм Хоум» ЕООД (Болгария).",

		"leader_image":           "leader.jpg",
		"leader_cert1_image":     "cert1.jpg",
		"leader_cert2_image":     "cert2.jpg",
		"leader_cert3_image":     "cert3.jpg",
		"leader_cert4_image":     "cert4.jpg",
		"leader_cert5_image":     "cert5.jpg",
		"leader_cert_main_image": "cert_big.jpg",

		"project_remont_1_image":        "remont_1_photo.jpg",
		"project_remont_1_before_image": "remont_1_before.jpg",
		"project_remont_1_after_image":  "remont_1_after.jpg",
		"project_remont_2_image":        "remont_2_photo.jpg",
		"project_remont_2_before_image": "remont_2_before.jpg",
		"project_remont_2_after_image":  "remont_2_after.jpg",
		"project_remont_3_image":        "remont_3_photo.jpg",
		"project_remont_3_before_image": "remont_3_before.jpg",
		"project_remont_3_after_image":  "remont_3_after.jpg",
		"project_remont_4_image":        "remont_4_photo.jpg",
		"project_remont_4_before_image": "remont_4_before.jpg",
		"project_remont_4_after_image":  "remont_4_after.jpg",
		"project_remont_5_image":        "remont_5_photo.jpg",
		"project_remont_5_before_image": "remont_5_before.jpg",
		"project_remont_5_after_image":  "remont_5_after.jpg",
		"project_remont_6_image":        "remont_6_photo.jpg",
		"project_remont_6_before_image": "remont_6_before.jpg",
		"project_remont_6_after_image":  "remont_6_after.jpg",

		"news1_image": "news1.jpg",
		"news2_image": "news2.jpg",
		"news3_image": "news3.jpg",

		"footer_about": "Работаем на рынке недвижимости с 1997 года. Профессионализм и порядочность – основные принципы нашей работы.",
		"footer_copy":  "© 2026 ООО «Московское Агентство Недвижимости». Все права защищены.",
	}
}
