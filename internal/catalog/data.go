package catalog

// Static track data, ported deck by deck from the original curriculum.
// Deck order is the canonical display order.

// Survival A1: essential phrases for getting by in France.
var survivalDeck = []Card{
	{ID: "surv-1", Emoji: "👋", Prompt: "Bonjour, ça va?", Meaning: "Hola, ¿qué tal?", Kind: KindPhrase},
	{ID: "surv-2", Emoji: "🌙", Prompt: "Bonne soirée", Meaning: "Que tengas buena noche", Kind: KindPhrase},
	{ID: "surv-3", Emoji: "🙏", Prompt: "Merci beaucoup", Meaning: "Muchas gracias", Kind: KindPhrase},
	{ID: "surv-4", Emoji: "🤷", Prompt: "Je ne comprends pas", Meaning: "No entiendo", Kind: KindPhrase},
	{ID: "surv-5", Emoji: "🐌", Prompt: "Plus lentement, s'il vous plaît", Meaning: "Más despacio, por favor", Kind: KindPhrase},
	{ID: "surv-6", Emoji: "☕", Prompt: "Un café, s'il vous plaît", Meaning: "Un café, por favor", Kind: KindPhrase},
	{ID: "surv-7", Emoji: "🥐", Prompt: "Je voudrais un croissant", Meaning: "Quisiera un croissant", Kind: KindPhrase},
	{ID: "surv-8", Emoji: "💳", Prompt: "L'addition, s'il vous plaît", Meaning: "La cuenta, por favor", Kind: KindPhrase},
	{ID: "surv-9", Emoji: "📍", Prompt: "Où sont les toilettes ?", Meaning: "¿Dónde está el baño?", Kind: KindPhrase},
	{ID: "surv-10", Emoji: "🚇", Prompt: "Je cherche le métro", Meaning: "Busco el metro", Kind: KindPhrase},
	{ID: "surv-11", Emoji: "🚑", Prompt: "Aidez-moi !", Meaning: "¡Ayúdenme!", Kind: KindPhrase},
	{ID: "surv-12", Emoji: "💊", Prompt: "J'ai besoin d'un médecin", Meaning: "Necesito un médico", Kind: KindPhrase},
	{ID: "surv-13", Emoji: "🛍️", Prompt: "À emporter, s'il vous plaît", Meaning: "Para llevar, por favor", Kind: KindPhrase},
	{ID: "surv-14", Emoji: "💳", Prompt: "Vous prenez la carte ?", Meaning: "¿Aceptan tarjeta?", Kind: KindPhrase},
	{ID: "surv-15", Emoji: "😅", Prompt: "C'est pas grave", Meaning: "No pasa nada / No importa", Kind: KindPhrase},
	{ID: "surv-16", Emoji: "🕑", Prompt: "J'arrive dans 5 minutes", Meaning: "Llego en 5 minutos", Kind: KindPhrase},
	{ID: "surv-17", Emoji: "🛑", Prompt: "Arrêtez ici, s'il vous plaît", Meaning: "Pare aquí, por favor (Taxi)", Kind: KindPhrase},
	{ID: "surv-18", Emoji: "📶", Prompt: "C'est quoi le mot de passe Wifi ?", Meaning: "¿Cuál es la contraseña del Wifi?", Kind: KindPhrase},
	{ID: "surv-19", Emoji: "👍", Prompt: "Ça marche", Meaning: "Vale / Me parece bien / Funciona", Kind: KindPhrase},
	{ID: "surv-20", Emoji: "🌡️", Prompt: "Il fait trop chaud ici", Meaning: "Hace demasiado calor aquí", Kind: KindPhrase},
}

// Object Lab: high-frequency nouns.
var objectsDeck = []Card{
	{ID: "obj-1", Emoji: "🏠", Prompt: "La maison", Meaning: "La casa", Kind: KindVocab},
	{ID: "obj-2", Emoji: "🚗", Prompt: "La voiture", Meaning: "El coche", Kind: KindVocab},
	{ID: "obj-3", Emoji: "🥖", Prompt: "Le pain", Meaning: "El pan", Kind: KindVocab},
	{ID: "obj-4", Emoji: "🧀", Prompt: "Le fromage", Meaning: "El queso", Kind: KindVocab},
	{ID: "obj-5", Emoji: "📱", Prompt: "Le téléphone", Meaning: "El teléfono", Kind: KindVocab},
	{ID: "obj-6", Emoji: "💻", Prompt: "L'ordinateur", Meaning: "El ordenador", Kind: KindVocab},
	{ID: "obj-7", Emoji: "🗝️", Prompt: "La clé", Meaning: "La llave", Kind: KindVocab},
	{ID: "obj-8", Emoji: "👜", Prompt: "Le sac", Meaning: "El bolso", Kind: KindVocab},
	{ID: "obj-9", Emoji: "📖", Prompt: "Le livre", Meaning: "El libro", Kind: KindVocab},
	{ID: "obj-10", Emoji: "🪑", Prompt: "La chaise", Meaning: "La silla", Kind: KindVocab},
	{ID: "obj-11", Emoji: "🛏️", Prompt: "Le lit", Meaning: "La cama", Kind: KindVocab},
	{ID: "obj-12", Emoji: "🍷", Prompt: "Le vin", Meaning: "El vino", Kind: KindVocab},
	{ID: "obj-13", Emoji: "🗝️", Prompt: "Les clés", Meaning: "Las llaves", Kind: KindVocab},
	{ID: "obj-14", Emoji: "🔋", Prompt: "Le chargeur", Meaning: "El cargador", Kind: KindVocab},
	{ID: "obj-15", Emoji: "🧥", Prompt: "Le manteau", Meaning: "El abrigo", Kind: KindVocab},
	{ID: "obj-16", Emoji: "👟", Prompt: "Les chaussures", Meaning: "Los zapatos", Kind: KindVocab},
	{ID: "obj-17", Emoji: "🧴", Prompt: "La crème solaire", Meaning: "La crema solar", Kind: KindVocab},
	{ID: "obj-18", Emoji: "🕶️", Prompt: "Les lunettes", Meaning: "Las gafas", Kind: KindVocab},
	{ID: "obj-19", Emoji: "🎫", Prompt: "Le billet", Meaning: "El billete/entrada", Kind: KindVocab},
	{ID: "obj-20", Emoji: "🧊", Prompt: "Le frigo", Meaning: "La nevera", Kind: KindVocab},
}

// Verb Gym: conjugated verbs in context.
var verbsDeck = []Card{
	{ID: "verb-1", Emoji: "😴", Prompt: "Je suis fatigué", Meaning: "Estoy cansado", Kind: KindVerb},
	{ID: "verb-2", Emoji: "🍽️", Prompt: "J'ai faim", Meaning: "Tengo hambre", Kind: KindVerb},
	{ID: "verb-3", Emoji: "💧", Prompt: "J'ai soif", Meaning: "Tengo sed", Kind: KindVerb},
	{ID: "verb-4", Emoji: "🏃", Prompt: "Je vais au travail", Meaning: "Voy al trabajo", Kind: KindVerb},
	{ID: "verb-5", Emoji: "❤️", Prompt: "J'aime ça", Meaning: "Me gusta esto", Kind: KindVerb},
	{ID: "verb-6", Emoji: "🤔", Prompt: "Je pense que oui", Meaning: "Creo que sí", Kind: KindVerb},
	{ID: "verb-7", Emoji: "🗣️", Prompt: "Je parle français", Meaning: "Hablo francés", Kind: KindVerb},
	{ID: "verb-8", Emoji: "👀", Prompt: "Je vois", Meaning: "Yo veo", Kind: KindVerb},
	{ID: "verb-9", Emoji: "✍️", Prompt: "J'écris un message", Meaning: "Escribo un mensaje", Kind: KindVerb},
	{ID: "verb-10", Emoji: "🎧", Prompt: "J'écoute de la musique", Meaning: "Escucho música", Kind: KindVerb},
	{ID: "verb-11", Emoji: "🏠", Prompt: "Je reste à la maison", Meaning: "Me quedo en casa", Kind: KindVerb},
	{ID: "verb-12", Emoji: "🛒", Prompt: "Je fais les courses", Meaning: "Hago las compras", Kind: KindVerb},
	{ID: "verb-13", Emoji: "🚿", Prompt: "Je prends une douche", Meaning: "Me ducho", Kind: KindVerb},
	{ID: "verb-14", Emoji: "🍳", Prompt: "Je prépare le dîner", Meaning: "Preparo la cena", Kind: KindVerb},
	{ID: "verb-15", Emoji: "🧹", Prompt: "Je dois nettoyer", Meaning: "Tengo que limpiar", Kind: KindVerb},
	{ID: "verb-16", Emoji: "🔍", Prompt: "Je cherche mes clés", Meaning: "Busco mis llaves", Kind: KindVerb},
	{ID: "verb-17", Emoji: "🛒", Prompt: "Je dois acheter ça", Meaning: "Tengo que comprar esto", Kind: KindVerb},
	{ID: "verb-18", Emoji: "🤝", Prompt: "On se retrouve là-bas", Meaning: "Nos encontramos allí", Kind: KindVerb},
	{ID: "verb-19", Emoji: "📲", Prompt: "Je t'appelle plus tard", Meaning: "Te llamo más tarde", Kind: KindVerb},
	{ID: "verb-20", Emoji: "🚶", Prompt: "Je pars maintenant", Meaning: "Me voy ahora", Kind: KindVerb},
}

// Corporate: professional phrases for the office.
var corporateDeck = []Card{
	{ID: "corp-1", Emoji: "📧", Prompt: "Je t'envoie un email", Meaning: "Te envío un email", Kind: KindPhrase},
	{ID: "corp-2", Emoji: "📅", Prompt: "Je suis en réunion", Meaning: "Estoy en reunión", Kind: KindPhrase},
	{ID: "corp-3", Emoji: "✉️", Prompt: "Cordialement", Meaning: "Cordialmente (firma)", Kind: KindPhrase},
	{ID: "corp-4", Emoji: "📞", Prompt: "Je vous rappelle", Meaning: "Le devuelvo la llamada", Kind: KindPhrase},
	{ID: "corp-5", Emoji: "📎", Prompt: "Veuillez trouver ci-joint", Meaning: "Adjunto encontrará", Kind: KindPhrase},
	{ID: "corp-6", Emoji: "🤝", Prompt: "Enchanté de vous rencontrer", Meaning: "Encantado de conocerle", Kind: KindPhrase},
	{ID: "corp-7", Emoji: "⏰", Prompt: "Je suis en retard", Meaning: "Llego tarde", Kind: KindPhrase},
	{ID: "corp-8", Emoji: "📊", Prompt: "Voici le rapport", Meaning: "Aquí está el informe", Kind: KindPhrase},
	{ID: "corp-9", Emoji: "💼", Prompt: "C'est urgent", Meaning: "Es urgente", Kind: KindPhrase},
	{ID: "corp-10", Emoji: "🗓️", Prompt: "On se voit demain", Meaning: "Nos vemos mañana", Kind: KindPhrase},
	{ID: "corp-11", Emoji: "✅", Prompt: "C'est noté", Meaning: "Anotado / Entendido", Kind: KindPhrase},
	{ID: "corp-12", Emoji: "🙋", Prompt: "J'ai une question", Meaning: "Tengo una pregunta", Kind: KindPhrase},
	{ID: "corp-13", Emoji: "🏠", Prompt: "Je suis en télétravail", Meaning: "Estoy teletrabajando", Kind: KindPhrase},
	{ID: "corp-14", Emoji: "🔗", Prompt: "Tu as le lien ?", Meaning: "¿Tienes el enlace?", Kind: KindPhrase},
	{ID: "corp-15", Emoji: "📅", Prompt: "On peut décaler ?", Meaning: "¿Podemos mover la reunión?", Kind: KindPhrase},
	{ID: "corp-16", Emoji: "🔇", Prompt: "Ton micro est coupé", Meaning: "Tu micro está apagado", Kind: KindPhrase},
	{ID: "corp-17", Emoji: "🚀", Prompt: "C'est validé", Meaning: "Está aprobado", Kind: KindPhrase},
	{ID: "corp-18", Emoji: "🔄", Prompt: "Je te tiens au courant", Meaning: "Te mantengo informado", Kind: KindPhrase},
}

// Glue Words: connectors and linking words.
var glueDeck = []Card{
	{ID: "glue-1", Emoji: "🔗", Prompt: "Mais", Meaning: "Pero", Kind: KindConnector},
	{ID: "glue-2", Emoji: "➡️", Prompt: "Donc", Meaning: "Entonces / Por lo tanto", Kind: KindConnector},
	{ID: "glue-3", Emoji: "💡", Prompt: "Parce que", Meaning: "Porque", Kind: KindConnector},
	{ID: "glue-4", Emoji: "🔄", Prompt: "Alors", Meaning: "Entonces / Así que", Kind: KindConnector},
	{ID: "glue-5", Emoji: "➕", Prompt: "Et aussi", Meaning: "Y también", Kind: KindConnector},
	{ID: "glue-6", Emoji: "⚖️", Prompt: "Cependant", Meaning: "Sin embargo", Kind: KindConnector},
	{ID: "glue-7", Emoji: "🎯", Prompt: "En fait", Meaning: "De hecho", Kind: KindConnector},
	{ID: "glue-8", Emoji: "📌", Prompt: "D'abord", Meaning: "Primero", Kind: KindConnector},
	{ID: "glue-9", Emoji: "🏁", Prompt: "Ensuite", Meaning: "Luego / Después", Kind: KindConnector},
	{ID: "glue-10", Emoji: "🔚", Prompt: "Enfin", Meaning: "Finalmente", Kind: KindConnector},
	{ID: "glue-11", Emoji: "🤷", Prompt: "Peut-être", Meaning: "Quizás / Tal vez", Kind: KindConnector},
	{ID: "glue-12", Emoji: "💯", Prompt: "Bien sûr", Meaning: "Por supuesto", Kind: KindConnector},
	{ID: "glue-13", Emoji: "💥", Prompt: "Du coup", Meaning: "Entonces / Total que... (Muy usado)", Kind: KindConnector},
	{ID: "glue-14", Emoji: "🤐", Prompt: "Bref", Meaning: "En fin / Resumiendo", Kind: KindConnector},
	{ID: "glue-15", Emoji: "🤷", Prompt: "Quand même", Meaning: "De todas formas / Aún así", Kind: KindConnector},
	{ID: "glue-16", Emoji: "⚖️", Prompt: "Par contre", Meaning: "En cambio / Por otro lado", Kind: KindConnector},
	{ID: "glue-17", Emoji: "🤔", Prompt: "Genre", Meaning: "Tipo / O sea (Coloquial)", Kind: KindConnector},
	{ID: "glue-18", Emoji: "👉", Prompt: "D'ailleurs", Meaning: "Por cierto / A propósito", Kind: KindConnector},
	{ID: "glue-19", Emoji: "🛑", Prompt: "Franchement", Meaning: "Francamente / Sinceramente", Kind: KindConnector},
	{ID: "glue-20", Emoji: "👀", Prompt: "Carrément", Meaning: "Totalmente / Completamente (Coloquial)", Kind: KindConnector},
}

// Phonetic Lab: hard words with pronunciation guides, traps, and mnemonics.
var phoneticDeck = []Card{
	{
		ID: "phon-1", Emoji: "🐦",
		Prompt: "Oiseau", Meaning: "Pájaro",
		Kind: KindPhonetic,
		PhoneticGuide: "wa-ZO",
		Trap: "Todas las vocales cambian: OI→wa, EAU→o",
		Mnemonic: "Piensa en \"guaso\" pero con W",
	},
	{
		ID: "phon-2", Emoji: "🍷",
		Prompt: "Bordeaux", Meaning: "Burdeos (ciudad)",
		Kind: KindPhonetic,
		PhoneticGuide: "Bor-DÓ",
		Trap: "EAU siempre suena O",
		Mnemonic: "El vino de BorDÓ",
	},
	{
		ID: "phon-3", Emoji: "🎩",
		Prompt: "Monsieur", Meaning: "Señor",
		Kind: KindPhonetic,
		PhoneticGuide: "Me-SIÖ",
		Trap: "La R y la N desaparecen completamente",
		Mnemonic: "Suena como \"mesiú\" en español",
	},
	{
		ID: "phon-4", Emoji: "🪑",
		Prompt: "S'asseoir", Meaning: "Sentarse",
		Kind: KindPhonetic,
		PhoneticGuide: "Sa-SWÁR",
		Trap: "Doble S y OI→wa",
		Mnemonic: "Sasuar = sentarse en el sofá",
	},
	{
		ID: "phon-5", Emoji: "🥚",
		Prompt: "Œuf", Meaning: "Huevo",
		Kind: KindPhonetic,
		PhoneticGuide: "ÖF",
		Trap: "La Œ suena como una O cerrada alemana",
		Mnemonic: "Piensa en decir \"of\" pero redondeando los labios",
	},
	{
		ID: "phon-6", Emoji: "🔐",
		Prompt: "Serrurerie", Meaning: "Cerrajería",
		Kind: KindPhonetic,
		PhoneticGuide: "Se-ú-re-RÍ",
		Trap: "Trabalenguas de Rs - la E entre Rs es casi muda",
		Mnemonic: "El trabalenguas del cerrajero",
	},
	{
		ID: "phon-7", Emoji: "📅",
		Prompt: "Aujourd'hui", Meaning: "Hoy",
		Kind: KindPhonetic,
		PhoneticGuide: "O-yur-DÜÍ",
		Trap: "AU→o, la R es suave, HUI→üi",
		Mnemonic: "Piensa: \"Oyur-dui\" como si fuera una palabra china",
	},
	{
		ID: "phon-8", Emoji: "🥐",
		Prompt: "Croissant", Meaning: "Cruasán",
		Kind: KindPhonetic,
		PhoneticGuide: "Krua-SÁN",
		Trap: "La T final es MUDA, AN es nasal",
		Mnemonic: "Krua-SAN (no \"sant\")",
	},
	{
		ID: "phon-9", Emoji: "🏥",
		Prompt: "Hôpital", Meaning: "Hospital",
		Kind: KindPhonetic,
		PhoneticGuide: "O-pi-TÁL",
		Trap: "La H es muda, el acento cirunflejo (ô) indica una O larga",
		Mnemonic: "Sin la H: O-pital",
	},
	{
		ID: "phon-10", Emoji: "💧",
		Prompt: "Eau", Meaning: "Agua",
		Kind: KindPhonetic,
		PhoneticGuide: "Ó",
		Trap: "Tres letras, un solo sonido: O",
		Mnemonic: "E-A-U = solo \"O\"... el francés es eficiente",
	},
	{
		ID: "phon-11", Emoji: "🐿️",
		Prompt: "Écureuil", Meaning: "Ardilla",
		Kind: KindPhonetic,
		PhoneticGuide: "É-cu-RÖY",
		Trap: "Terminación -EUIL imposible",
		Mnemonic: "Mezcla R y Y",
	},
	{
		ID: "phon-12", Emoji: "🐸",
		Prompt: "Grenouille", Meaning: "Rana",
		Kind: KindPhonetic,
		PhoneticGuide: "Gre-NUY",
		Trap: "OUILLE suena como \"Uy\"",
		Mnemonic: "Gre-NUY",
	},
	{
		ID: "phon-13", Emoji: "🥣",
		Prompt: "Bouilloire", Meaning: "Hervidor",
		Kind: KindPhonetic,
		PhoneticGuide: "Bu-YWAR",
		Trap: "Doble L mojada + OIRE",
		Mnemonic: "Bu-Y-War",
	},
	{
		ID: "phon-14", Emoji: "🥛",
		Prompt: "Yaourt", Meaning: "Yogur",
		Kind: KindPhonetic,
		PhoneticGuide: "Ya-URT",
		Trap: "Aquí sí suena la T final",
		Mnemonic: "Ya-hurt",
	},
}

// Vocabulary Atlas: days, numbers, colors, and months as a visual table.
var atlasDeck = []Card{
	{ID: "atlas-1", Emoji: "📅", Prompt: "Lundi", Meaning: "Lunes", Kind: KindTableRow, Category: "Días de la Semana"},
	{ID: "atlas-2", Emoji: "📅", Prompt: "Mardi", Meaning: "Martes", Kind: KindTableRow, Category: "Días de la Semana"},
	{ID: "atlas-3", Emoji: "📅", Prompt: "Mercredi", Meaning: "Miércoles", Kind: KindTableRow, Category: "Días de la Semana"},
	{ID: "atlas-4", Emoji: "📅", Prompt: "Jeudi", Meaning: "Jueves", Kind: KindTableRow, Category: "Días de la Semana"},
	{ID: "atlas-5", Emoji: "📅", Prompt: "Vendredi", Meaning: "Viernes", Kind: KindTableRow, Category: "Días de la Semana"},
	{ID: "atlas-6", Emoji: "📅", Prompt: "Samedi", Meaning: "Sábado", Kind: KindTableRow, Category: "Días de la Semana"},
	{ID: "atlas-7", Emoji: "📅", Prompt: "Dimanche", Meaning: "Domingo", Kind: KindTableRow, Category: "Días de la Semana"},
	{ID: "atlas-8", Emoji: "1️⃣", Prompt: "Un", Meaning: "Uno", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-9", Emoji: "2️⃣", Prompt: "Deux", Meaning: "Dos", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-10", Emoji: "3️⃣", Prompt: "Trois", Meaning: "Tres", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-11", Emoji: "4️⃣", Prompt: "Quatre", Meaning: "Cuatro", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-12", Emoji: "5️⃣", Prompt: "Cinq", Meaning: "Cinco", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-13", Emoji: "6️⃣", Prompt: "Six", Meaning: "Seis", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-14", Emoji: "7️⃣", Prompt: "Sept", Meaning: "Siete", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-15", Emoji: "8️⃣", Prompt: "Huit", Meaning: "Ocho", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-16", Emoji: "9️⃣", Prompt: "Neuf", Meaning: "Nueve", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-17", Emoji: "🔟", Prompt: "Dix", Meaning: "Diez", Kind: KindTableRow, Category: "Números"},
	{ID: "atlas-18", Emoji: "⚪", Prompt: "Blanc", Meaning: "Blanco", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-19", Emoji: "⚫", Prompt: "Noir", Meaning: "Negro", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-20", Emoji: "🔴", Prompt: "Rouge", Meaning: "Rojo", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-21", Emoji: "🔵", Prompt: "Bleu", Meaning: "Azul", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-22", Emoji: "🟢", Prompt: "Vert", Meaning: "Verde", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-23", Emoji: "🟡", Prompt: "Jaune", Meaning: "Amarillo", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-24", Emoji: "🟠", Prompt: "Orange", Meaning: "Naranja", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-25", Emoji: "🟣", Prompt: "Violet", Meaning: "Violeta", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-26", Emoji: "🩷", Prompt: "Rose", Meaning: "Rosa", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-27", Emoji: "🟤", Prompt: "Marron", Meaning: "Marrón", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-28", Emoji: "🩶", Prompt: "Gris", Meaning: "Gris", Kind: KindTableRow, Category: "Colores"},
	{ID: "atlas-29", Emoji: "📅", Prompt: "Janvier", Meaning: "Enero", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-30", Emoji: "📅", Prompt: "Février", Meaning: "Febrero", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-31", Emoji: "📅", Prompt: "Mars", Meaning: "Marzo", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-32", Emoji: "📅", Prompt: "Avril", Meaning: "Abril", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-33", Emoji: "📅", Prompt: "Mai", Meaning: "Mayo", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-34", Emoji: "📅", Prompt: "Juin", Meaning: "Junio", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-35", Emoji: "📅", Prompt: "Juillet", Meaning: "Julio", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-36", Emoji: "📅", Prompt: "Août", Meaning: "Agosto", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-37", Emoji: "📅", Prompt: "Septembre", Meaning: "Septiembre", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-38", Emoji: "📅", Prompt: "Octobre", Meaning: "Octubre", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-39", Emoji: "📅", Prompt: "Novembre", Meaning: "Noviembre", Kind: KindTableRow, Category: "Les Mois"},
	{ID: "atlas-40", Emoji: "📅", Prompt: "Décembre", Meaning: "Diciembre", Kind: KindTableRow, Category: "Les Mois"},
}

// Phrase Anatomy: complex sentences broken into annotated segments.
var anatomyDeck = []Card{
	{
		ID: "anat-1", Emoji: "🍷",
		Prompt: "Je voudrais un verre de vin rouge.",
		Meaning: "Quisiera un vaso de vino tinto.",
		Kind: KindAnatomy,
		Segments: []Segment{
			{Text: "Je", Meaning: "Yo", GrammarNote: "Pronombre personal"},
			{Text: "voudrais", Meaning: "quisiera", GrammarNote: "Condicional de cortesía (vouloir)"},
			{Text: "un verre", Meaning: "un vaso", GrammarNote: "Artículo indefinido + sustantivo"},
			{Text: "de vin rouge", Meaning: "de vino tinto", GrammarNote: "Preposición + sustantivo + adjetivo (color al final)"},
		},
	},
	{
		ID: "anat-2", Emoji: "🎒",
		Prompt: "Est-ce que tu peux m'aider, s'il te plaît?",
		Meaning: "¿Puedes ayudarme, por favor?",
		Kind: KindAnatomy,
		Segments: []Segment{
			{Text: "Est-ce que", Meaning: "¿...?", GrammarNote: "Partícula interrogativa formal"},
			{Text: "tu peux", Meaning: "tú puedes", GrammarNote: "Pronombre + verbo pouvoir (presente)"},
			{Text: "m'aider", Meaning: "ayudarme", GrammarNote: "Pronombre reflexivo + infinitivo"},
			{Text: "s'il te plaît", Meaning: "por favor", GrammarNote: "Fórmula de cortesía (informal tú)"},
		},
	},
	{
		ID: "anat-3", Emoji: "🏠",
		Prompt: "Je suis allé chez mes parents hier soir.",
		Meaning: "Fui a casa de mis padres anoche.",
		Kind: KindAnatomy,
		Segments: []Segment{
			{Text: "Je suis allé", Meaning: "Yo fui / He ido", GrammarNote: "Passé composé con être (verbo de movimiento)"},
			{Text: "chez", Meaning: "a casa de", GrammarNote: "Preposición especial para lugares personales"},
			{Text: "mes parents", Meaning: "mis padres", GrammarNote: "Adjetivo posesivo plural + sustantivo"},
			{Text: "hier soir", Meaning: "anoche", GrammarNote: "Expresión temporal (ayer + noche)"},
		},
	},
	{
		ID: "anat-4", Emoji: "☔",
		Prompt: "Il fait beau aujourd'hui, mais il va pleuvoir demain.",
		Meaning: "Hace buen tiempo hoy, pero va a llover mañana.",
		Kind: KindAnatomy,
		Segments: []Segment{
			{Text: "Il fait beau", Meaning: "Hace buen tiempo", GrammarNote: "Expresión impersonal del clima"},
			{Text: "aujourd'hui", Meaning: "hoy", GrammarNote: "Adverbio de tiempo"},
			{Text: "mais", Meaning: "pero", GrammarNote: "Conjunción adversativa"},
			{Text: "il va pleuvoir", Meaning: "va a llover", GrammarNote: "Futuro próximo (aller + infinitivo)"},
			{Text: "demain", Meaning: "mañana", GrammarNote: "Adverbio de tiempo"},
		},
	},
	{
		ID: "anat-5", Emoji: "🍽️",
		Prompt: "Qu'est-ce que vous prenez comme dessert?",
		Meaning: "¿Qué toman de postre?",
		Kind: KindAnatomy,
		Segments: []Segment{
			{Text: "Qu'est-ce que", Meaning: "¿Qué...?", GrammarNote: "Partícula interrogativa para objetos"},
			{Text: "vous prenez", Meaning: "ustedes toman", GrammarNote: "Pronombre formal + verbo prendre"},
			{Text: "comme dessert", Meaning: "de postre", GrammarNote: "comme = como/de (en contexto de menú)"},
		},
	},
	{
		ID: "anat-6", Emoji: "📋",
		Prompt: "Désolé, je ne peux pas venir ce soir parce que je dois finir un dossier urgent.",
		Meaning: "Lo siento, no puedo venir esta noche porque tengo que terminar un informe urgente.",
		Kind: KindAnatomy,
		Segments: []Segment{
			{Text: "Désolé", Meaning: "Lo siento", GrammarNote: "Disculpa / Expresión de lamento"},
			{Text: "je ne peux pas venir", Meaning: "no puedo venir", GrammarNote: "Negación de pouvoir (verbo modal) + infinitivo"},
			{Text: "ce soir", Meaning: "esta noche", GrammarNote: "Expresión temporal"},
			{Text: "parce que", Meaning: "porque", GrammarNote: "Conjunción causal"},
			{Text: "je dois finir", Meaning: "tengo que terminar", GrammarNote: "Devoir (obligación) + infinitivo"},
			{Text: "un dossier urgent", Meaning: "un informe urgente", GrammarNote: "Artículo + sustantivo + adjetivo"},
		},
	},
}

// Daily Essentials: vital everyday expressions, grouped for quick reference.
var essentialsDeck = []Card{
	{ID: "ess-1", Emoji: "👇", Prompt: "On descend ?", Meaning: "¿Bajamos?", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-2", Emoji: "🚪", Prompt: "On sort ?", Meaning: "¿Salimos?", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-3", Emoji: "🚶", Prompt: "On y va ?", Meaning: "¿Nos vamos?", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-4", Emoji: "💨", Prompt: "On bouge ?", Meaning: "¿Nos movemos/piramos?", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-5", Emoji: "🏠", Prompt: "Je rentre", Meaning: "Me voy a casa / Vuelvo", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-6", Emoji: "🍽️", Prompt: "À table !", Meaning: "¡A comer!", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-7", Emoji: "👀", Prompt: "Regarde ça", Meaning: "Mira esto", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-8", Emoji: "👂", Prompt: "Écoute-moi", Meaning: "Escúchame", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-9", Emoji: "✋", Prompt: "Attends", Meaning: "Espera", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-10", Emoji: "🏎️", Prompt: "Dépêche-toi", Meaning: "Date prisa", Kind: KindTableRow, Category: "Acción Inmediata"},
	{ID: "ess-11", Emoji: "🙏", Prompt: "Merci bien", Meaning: "Muchas gracias", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-12", Emoji: "👐", Prompt: "De rien", Meaning: "De nada", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-13", Emoji: "🤷", Prompt: "Pas de souci", Meaning: "No hay problema / Sin fallo", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-14", Emoji: "🙇", Prompt: "Désolé(e)", Meaning: "Lo siento", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-15", Emoji: "🚧", Prompt: "Pardon", Meaning: "Perdón / Permiso", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-16", Emoji: "🤧", Prompt: "À tes souhaits", Meaning: "Jesús/Salud (estornudo)", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-17", Emoji: "🎂", Prompt: "Bon anniversaire", Meaning: "Feliz cumpleaños", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-18", Emoji: "🍀", Prompt: "Bonne chance", Meaning: "Buena suerte", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-19", Emoji: "👋", Prompt: "À tout à l'heure", Meaning: "Hasta ahora (mismo día)", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-20", Emoji: "🌅", Prompt: "À demain", Meaning: "Hasta mañana", Kind: KindTableRow, Category: "Cortesía"},
	{ID: "ess-21", Emoji: "👍", Prompt: "Carrément", Meaning: "Totalmente / Definitivamente", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-22", Emoji: "👌", Prompt: "C'est nickel", Meaning: "Está perfecto / De lujo", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-23", Emoji: "🤔", Prompt: "C'est bizarre", Meaning: "Es raro", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-24", Emoji: "😐", Prompt: "Comme ci, comme ça", Meaning: "Más o menos / Así así", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-25", Emoji: "🤨", Prompt: "C'est vrai ?", Meaning: "¿En serio? / ¿Es verdad?", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-26", Emoji: "🙅", Prompt: "Pas du tout", Meaning: "Para nada", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-27", Emoji: "🤷", Prompt: "Je ne sais pas", Meaning: "No lo sé", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-28", Emoji: "🌭", Prompt: "J'ai la dalle", Meaning: "Me muero de hambre (Coloq.)", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-29", Emoji: "🥵", Prompt: "Je suis KO", Meaning: "Estoy reventado/a", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-30", Emoji: "😨", Prompt: "C'est chaud", Meaning: "Está complicado / Es difícil", Kind: KindTableRow, Category: "Respuestas"},
	{ID: "ess-31", Emoji: "🛑", Prompt: "Arrête !", Meaning: "¡Para ya!", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-32", Emoji: "📱", Prompt: "Envoie-moi ça", Meaning: "Mándame eso", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-33", Emoji: "📍", Prompt: "T'es où ?", Meaning: "¿Dónde estás?", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-34", Emoji: "⌚", Prompt: "On se voit quand ?", Meaning: "¿Cuándo nos vemos?", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-35", Emoji: "🍻", Prompt: "On prend un verre ?", Meaning: "¿Tomamos algo?", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-36", Emoji: "💰", Prompt: "C'est cher", Meaning: "Es caro", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-37", Emoji: "🆓", Prompt: "C'est gratuit", Meaning: "Es gratis", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-38", Emoji: "🚽", Prompt: "C'est par où ?", Meaning: "¿Por dónde es?", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-39", Emoji: "🧾", Prompt: "L'addition, s'il vous plaît", Meaning: "La cuenta, por favor", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-40", Emoji: "🆘", Prompt: "Au secours", Meaning: "Socorro / Ayuda", Kind: KindTableRow, Category: "Frases Útiles"},
	{ID: "ess-41", Emoji: "🤏", Prompt: "Un petit peu", Meaning: "Un poquito", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-42", Emoji: "🧱", Prompt: "Beaucoup", Meaning: "Mucho", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-43", Emoji: "🚫", Prompt: "Jamais", Meaning: "Nunca", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-44", Emoji: "♾️", Prompt: "Toujours", Meaning: "Siempre", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-45", Emoji: "🕰️", Prompt: "Maintenant", Meaning: "Ahora", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-46", Emoji: "🔜", Prompt: "Bientôt", Meaning: "Pronto", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-47", Emoji: "🗓️", Prompt: "La semaine prochaine", Meaning: "La semana que viene", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-48", Emoji: "🌙", Prompt: "Hier soir", Meaning: "Anoche", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-49", Emoji: "🔢", Prompt: "Combien ?", Meaning: "¿Cuánto(s)?", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-50", Emoji: "⚖️", Prompt: "C'est trop", Meaning: "Es demasiado", Kind: KindTableRow, Category: "Precisión"},
	{ID: "ess-51", Emoji: "🥶", Prompt: "J'ai froid", Meaning: "Tengo frío", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-52", Emoji: "🥵", Prompt: "J'ai chaud", Meaning: "Tengo calor", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-53", Emoji: "🤕", Prompt: "J'ai mal", Meaning: "Me duele", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-54", Emoji: "😰", Prompt: "J'ai peur", Meaning: "Tengo miedo", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-55", Emoji: "😴", Prompt: "Je suis fatigué(e)", Meaning: "Estoy cansado/a", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-56", Emoji: "🤢", Prompt: "J'ai la nausée", Meaning: "Tengo náuseas", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-57", Emoji: "😡", Prompt: "Je suis énervé(e)", Meaning: "Estoy enfadado/a", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-58", Emoji: "🥳", Prompt: "Je suis content(e)", Meaning: "Estoy contento/a", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-59", Emoji: "🧘", Prompt: "Je suis calme", Meaning: "Estoy tranquilo/a", Kind: KindTableRow, Category: "Sensaciones"},
	{ID: "ess-60", Emoji: "🔋", Prompt: "Je suis prêt(e)", Meaning: "Estoy listo/a", Kind: KindTableRow, Category: "Sensaciones"},
}

var tracks = []Track{
	{
		ID:          "survival",
		Title:       "Survival A1",
		TitleFr:     "Survie",
		Description: "Frases esenciales para sobrevivir en Francia",
		Color:       "cyan",
		Mode:        ModeFlashcard,
		Deck:        survivalDeck,
	},
	{
		ID:          "objects",
		Title:       "Object Lab",
		TitleFr:     "Les Objets",
		Description: "Sustantivos de alta frecuencia",
		Color:       "violet",
		Mode:        ModeFlashcard,
		Deck:        objectsDeck,
	},
	{
		ID:          "verbs",
		Title:       "Verb Gym",
		TitleFr:     "Les Verbes",
		Description: "Verbos conjugados en contexto",
		Color:       "amber",
		Mode:        ModeFlashcard,
		Deck:        verbsDeck,
	},
	{
		ID:          "corporate",
		Title:       "Corporate",
		TitleFr:     "Le Bureau",
		Description: "Frases profesionales para el trabajo",
		Color:       "emerald",
		Mode:        ModeFlashcard,
		Deck:        corporateDeck,
	},
	{
		ID:          "glue",
		Title:       "Glue Words",
		TitleFr:     "Les Connecteurs",
		Description: "Palabras de enlace y conectores",
		Color:       "rose",
		Mode:        ModeFlashcard,
		Deck:        glueDeck,
	},
	{
		ID:          "phonetic",
		Title:       "Phonetic Lab",
		TitleFr:     "Le Labo Phonétique",
		Description: "Palabras difíciles con guía de pronunciación",
		Color:       "fuchsia",
		Mode:        ModeFlashcard,
		Deck:        phoneticDeck,
	},
	{
		ID:          "atlas",
		Title:       "Vocabulary Atlas",
		TitleFr:     "Le Tableau",
		Description: "Días, números y colores en lista visual",
		Color:       "sky",
		Mode:        ModeTable,
		Deck:        atlasDeck,
	},
	{
		ID:          "anatomy",
		Title:       "Phrase Anatomy",
		TitleFr:     "L'Anatomie",
		Description: "Deconstrucción de frases complejas",
		Color:       "teal",
		Mode:        ModeAnatomy,
		Deck:        anatomyDeck,
	},
	{
		ID:          "essentials",
		Title:       "Daily Essentials",
		TitleFr:     "Le Quotidien",
		Description: "60 expresiones vitales para el día a día",
		Color:       "amber",
		Mode:        ModeTable,
		Deck:        essentialsDeck,
	},
}
