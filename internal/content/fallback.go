package content

import "github.com/vlasenka/pausebot/internal/models"

// Статичные fallback-корпуса. Используются, когда синхронизированный
// контент недоступен или категория пуста.

// короткие фразы — только для напоминаний
var fallbackPausePhrases = []string{
	"в тишине есть место",
	"фокус может ослабевать",
	"свой ритм — тоже ритм",
	"медленно — это тоже путь",
	"пауза может быть точкой опоры",
	"иногда достаточно оставить всё как есть",
	"можно замедлиться, даже если вокруг никто не замедляется",
	"спокойствие может приходить само",
	"иногда забота — это не делать",
	"пауза может случаться просто так",
	"простое присутствие имеет ценность",
	"к себе можно возвращаться медленно",
}

// музыка — для кнопки «Пауза»
var fallbackPauseMusic = []string{
	"https://youtu.be/YvAq6D3jHnY?si=OY1Gg7VbR5yu9D8r",
	"https://youtu.be/8YTHFnv-eV0?si=Uo4SWRA3s_Y1H_8e",
	"https://youtu.be/gnhJ4Ceor_M?si=jSyV0TM7gwjNxi6e",
	"https://youtu.be/ycYN0IXA-4U?si=rT9mg36Pzxqr53mv",
	"https://youtu.be/Q0d7ATDFZx0?si=sDOc0ZMnwD7Uw2Uo",
	"https://youtu.be/84D_J05McA0?si=MQlCYJWbS3ji8FgJ",
	"https://youtu.be/VNLrCWCv38Y?si=bqZaBhS7H98UgZUC",
	"https://youtu.be/xN-fUozKM0k?si=MoZKMq6HaF_-sbYT",
	"https://youtu.be/htQBS2Ikz6c?si=n0_OBV124kze1xyO",
	"https://youtu.be/StWFJumEF7I?si=6svKGR2hhKh0-RVy",
}

// стихи — для кнопки «Пауза»
var fallbackPausePoems = []string{
	`О счастье мы всегда лишь вспоминаем.
А счастье всюду. Может быть, оно —
Вот этот сад осенний за сараем
И чистый воздух, льющийся в окно.

В бездонном небе лёгким белым краем
Встаёт, сияет облако. Давно
Слежу за ним… Мы мало видим, знаем,
А счастье только знающим дано.

Иван Бунин`,
	`Я не люблю фатального исхода,
От жизни никогда не устаю.
Я не люблю любое время года,
Когда веселых песен не пою.

Я не люблю холодного цинизма,
В восторженность не верю, и еще —
Когда чужой мои читает письма,
Заглядывая мне через плечо.

Я не люблю, когда наполовину
Или когда прервали разговор.
Я не люблю, когда стреляют в спину,
Я также против выстрелов в упор.

Владимир Высоцкий`,
	`все важные фразы должны быть тихими,
все фото с родными всегда нерезкие.
самые странные люди всегда великие,
а причины для счастья всегда невеские.

самое честное слышишь на кухне ночью,
ведь если о чувствах — не по телефону,
а если уж плакать, так выть по-волчьи,
чтоб тоскливым эхом на полрайона.

все важные встречи всегда случайные.
самые верные подданные — предатели,
цирковые клоуны — все печальные,
а упрямые скептики — все мечтатели.`,
	`Когда мне встречается в людях дурное,
То долгое время я верить стараюсь,
Что это скорее всего напускное,
Что это случайность. И я ошибаюсь.

И всё же, и всё же я верить не брошу,
Что надо в начале любого пути
С хорошей, с хорошей и только с хорошей,
С доверчивой меркою к людям идти!

Эдуард Асадов`,
	`Когда мне будет восемьдесят пять,
Когда начну я тапочки терять,
В бульоне размягчать кусочки хлеба,
Вязать излишне длинные шарфы,
Ходить, держась за стены и шкафы,
И долго-долго вглядываться в небо,

И нам не страшно будет умирать,
Когда нам будет восемьдесят пять…

Эдуард Асадов`,
}

var fallbackBreathe = []string{
	"https://soundcloud.com/aleksandra-ermolenko/pauza-dekabr?in=aleksandra-ermolenko%2Fsets%2Fpauza&si=a3094c0bc9f84f0fbad941be6fbdd883&utm_source=clipboard&utm_medium=text&utm_campaign=social_sharing",
}

var fallbackMovies = []string{
	"https://www.imdb.com/title/tt5247022",
	"https://www.imdb.com/title/tt1626146",
}

var fallbackBooks = []string{
	"https://www.dropbox.com/scl/fi/fv7ihjw2i65372v2sbft8/.epub?rlkey=4edhsw200b4fk064lin7wkwly&st=xsqaokbv&dl=0",
}

// fallbackItems maps a content category to its static corpus
var fallbackItems = map[string][]string{
	models.ContentPausePhrases: fallbackPausePhrases,
	models.ContentPauseMusic:   fallbackPauseMusic,
	models.ContentPauseLong:    fallbackPausePoems,
	models.ContentBreathe:      fallbackBreathe,
	models.ContentMovie:        fallbackMovies,
	models.ContentBook:         fallbackBooks,
}

var fallbackUITexts = map[string]string{
	"ONBOARDING_WELCOME": `Здесь — пауза.

Небольшие остановки
в коротких фразах, стихах,
иногда в музыке.

Ничего не нужно делать.
Можно просто быть здесь.`,
	"ONBOARDING_ASK_REMINDERS": `Иногда паузу легко почувствовать.
Иногда о ней важно вспомнить.

Нужны напоминания
об остановке?`,
	"ONBOARDING_NO_REMINDERS": `Когда возникает желание остановиться —
достаточно нажать кнопку.

Здесь появляется пауза.`,
	"ONBOARDING_ASK_FREQUENCY": "Как часто нужны напоминания?",
	"ONBOARDING_ASK_TIME":      "В какое время?",
	"ONBOARDING_CONFIRM": `Пауза будет появляться
{frequency_text}
{time_text}.

В любой другой момент
пауза доступна здесь.`,
	"WELCOME_BACK": `Когда возникает желание остановиться —
достаточно нажать кнопку.`,
	"BOX_INTRO": `Следующий набор сейчас в процессе.
Он собирается внимательно и без спешки —
так, чтобы пауза в нём действительно ощущалась.

Каждый новый набор выходит первого числа месяца.
Предзаказы на него собираются до 20 числа предыдущего месяца.

Предзаказ оформляется с предоплатой —
она позволяет собрать нужное количество наборов
и сохранить ритм без спешки.

Твой следующий набор: 1 {month}.

Если этот темп откликается —
можно оставить предзаказ.`,
	"BOX_ASK_NAME": `Тебя зовут {name}?

Если да — нажми «Да, верно».
Если хочешь изменить — напиши своё имя.`,
	"BOX_ASK_PHONE": `Телефон для связи

Укажи номер в международном формате,
например: +7 999 123 45 67`,
	"BOX_ASK_ADDRESS": `Адрес доставки

Укажи полный адрес:
страна, город, улица, дом, квартира, индекс.`,
	"BOX_CONFIRM": `Проверь данные:

Имя: {name}
Телефон: {phone}
Адрес: {address}

Набор: 1 {month}
Стоимость: 79 €`,
	"BOX_PAYMENT": `Для оплаты перейди по ссылке ниже.
После оплаты нажми «Я оплатил».`,
	"BOX_THANKS": `Спасибо.

Набор будет отправлен 1 {month}
на указанный адрес.

Мы напишем, когда всё будет готово.`,
	"BOX_CONFIRMED": `Оплата подтверждена.

Набор будет отправлен 1 {month}.
Спасибо, что ты здесь.`,
	"BOX_LATER": `Хорошо.

Можно вернуться позже.`,
	"WELCOME": `Здесь — пауза

Небольшие остановки в коротких фразах, стихах, иногда в музыке.

Ничего не нужно делать.
Можно просто быть здесь.`,
	"ABOUT": `Пауза — это пространство для коротких ментальных остановок.

Тексты, видео и музыка.
Оффлайн-набор для остановок.

79 €`,
	"ORDER_START": `Оформление предзаказа

Напиши своё имя.`,
	"ORDER_EMAIL": "Теперь email — туда придёт доступ после оплаты.",
	"ORDER_CONFIRM": `Проверь данные:

Имя: {name}
Email: {email}
Сумма: 79 €

Всё верно?`,
	"ORDER_PAYMENT": `Отлично.

Для оплаты перейди по ссылке ниже.
После оплаты нажми «Я оплатил».`,
	"ORDER_THANKS": `Спасибо.

Мы проверим оплату и пришлём доступ на {email}.

Обычно это занимает несколько часов.`,
	"ORDER_CONFIRMED": `Оплата подтверждена.

Доступ отправлен на {email}.
Спасибо, что ты здесь.`,
	"ORDER_REJECTED": "К сожалению, мы не смогли подтвердить оплату. Напиши нам, если есть вопросы.",
	"HELP": `Команды:

/start — начало
/pause — получить паузу
/box — предзаказ набора`,
}

// requiredUIKeys must all be present in the synced UI text corpus;
// the health endpoint reports the missing ones
var requiredUIKeys = []string{
	"ONBOARDING_WELCOME",
	"ONBOARDING_ASK_REMINDERS",
	"ONBOARDING_NO_REMINDERS",
	"ONBOARDING_ASK_FREQUENCY",
	"ONBOARDING_ASK_TIME",
	"ONBOARDING_CONFIRM",
	"WELCOME_BACK",
	"BOX_INTRO",
	"BOX_ASK_NAME",
	"BOX_ASK_PHONE",
	"BOX_ASK_ADDRESS",
	"BOX_CONFIRM",
	"BOX_PAYMENT",
	"BOX_THANKS",
	"BOX_CONFIRMED",
	"BOX_LATER",
	"WELCOME",
	"ABOUT",
	"ORDER_START",
	"ORDER_EMAIL",
	"ORDER_CONFIRM",
	"ORDER_PAYMENT",
	"ORDER_THANKS",
	"ORDER_CONFIRMED",
	"HELP",
}
