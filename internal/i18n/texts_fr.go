package i18n

const arcomStudy = "Arcom, 2024. Étude de l'impact environnemental des usages audiovisuels en France."
const arcomURL = "https://www.arcom.fr/sites/default/files/2024-10/Arcom-arcep-ademe-etude-impact-environnemental-des-usages-audiovisuels.pdf"

//nolint:gochecknoglobals // Read-only text catalog.
var textsFR = map[string]string{
	"page_title":                       "Calculateur d’impact CO2 du visionnage de vidéos sur internet",
	"producer":                         "Je produis des vidéos",
	"consumer":                         "Je regarde des vidéos",
	"producer_help":                    "Combien d’heures votre chaîne a-t-elle été visionnée ces sept derniers jours (YouTube Studio -> Données analytiques -> Aperçu, « 7 derniers jours ») ?",
	"consumer_help":                    "Combien d’heures de vidéos regardez-vous par semaine ?",
	"consumer_weekly_hours":            "Heures / semaine",
	"producer_watch_hours":             "Heures de visionnage (7 derniers jours)",
	"compute_button":                   "Calculer",
	"result_total_kg":                  "Émissions",
	"result_total_kg_year":             "Émissions",
	"unit_per_year":                    "kg de CO2e par an",
	"result_with_production_prefix":    "En prenant en compte le CO2e émis pour produire les appareils servant à regarder les vidéos (smartphone, ordinateur, tablette, TV...), cela correspond à :",
	"result_without_production_prefix": "Sans prendre en compte le CO2e émis pour produire les appareils, cela correspond à :",
	"result_explanation": `Explication : la majorité du CO2 est émis lors de la fabrication des appareils servant à regarder les vidéos. Si vous cherchez l’impact carbone **marginal** du visionnage de vidéos, ne considérez que le deuxième chiffre.

Ces estimations reposent sur des données types pour un utilisateur situé en France. Les paramètres les plus importants :

  - Garder ses appareils longtemps fait baisser l’impact. En suivant l’ARCOM, un smartphone est changé en moyenne après 2,5 années à raison de 3,9 h d’utilisation par jour.
  - Le réseau fixe (éthernet ou Wi-Fi) consomme jusqu’à 20 fois moins d’énergie par Go que le réseau mobile (4G/5G).
  - La résolution des vidéos a un impact important ; elle est en général plus basse sur smartphone que sur ordinateur.
  - Les calculs supposent une électricité peu carbonée, comme en France. Depuis un autre pays, le bilan peut être très différent.

Tous ces paramètres sont modifiables (greenstream edit, ou --set).`,
	"details_subheader":           "Comment ces chiffres ont-ils été obtenus ?",
	"even_more_details_subheader": "Encore plus de détails",
	"details_text": `Le CO2 total émis se décompose en trois parties :

1. Les appareils utilisés pour regarder les vidéos, pendant leur fabrication et leur utilisation.
2. Les réseaux qui transfèrent les vidéos (fixe ou mobile), avec une part proportionnelle aux données et une part fixe par utilisateur et par heure.
3. Les centres de données, avec une part proportionnelle aux Go transférés et une part par heure visionnée.

Pour les valeurs renseignées :

1. Appareils = production ramenée à une heure + électricité pour une heure = {device_production_co2_per_video_hour_total:.4f} + {device_energy_co2_per_video_hour_total:.4f} = **{device_production_co2_per_video_hour_total_plus_energy:.4f} kg CO2e/h**.

2. Réseaux, en supposant :
  - réseau fixe {network_share_fixed:.1f} % du temps, réseau mobile {network_share_mobile:.1f} % du temps ;
  - sur le fixe : 480p {fixed_network_resolution_percent_480p:.0f} %, 1080p {fixed_network_resolution_percent_1080p:.0f} %, 4K {fixed_network_resolution_percent_2160p:.0f} % ;
  - sur le mobile : 480p {mobile_network_resolution_percent_480p:.0f} %, 1080p {mobile_network_resolution_percent_1080p:.0f} %, 4K {mobile_network_resolution_percent_2160p:.0f} %.
  Débit moyen fixe {gb_per_hour_fixed:.2f} Go/h, mobile {gb_per_hour_mobile:.2f} Go/h ; énergie fixe {network_kwh_per_video_hour_fixed:.4f} kWh/h, mobile {network_kwh_per_video_hour_mobile:.4f} kWh/h.
  → **Total {network_kwh_per_video_hour_total:.4f} kWh/h**, soit **{network_co2_per_video_hour_total:.4f} kg CO2e/h**.

3. Centres de données, pour {gb_per_hour_total_weighted:.2f} Go/h en moyenne : {datacenter_co2_per_video_hour_transfer:.4f} kg CO2e/h pour le stockage + {datacenter_co2_per_video_hour_runtime:.4f} kg/h pour le visionnage = **{datacenter_co2_per_video_hour_total:.4f} kg/h**.

Une heure de vidéo émet donc {kg_per_video_hour_total:.4f} kg CO2e. Multiplié par {hours_input:,.2f} h/semaine et 52 semaines : **{total_kg_co2e:,.2f} kg CO2e/an**.`,
	"even_more_details_text": `1. Appareils (production + électricité)

  a. Production ramenée à une heure = (CO2 de fabrication / durée de vie en heures) × part d’utilisation :
    - Ordinateur : ({device_production_kg_co2e_computer:.2f} / {device_lifetime_hours_computer:.0f}) × {device_share_percent_computer:.1f} % = {device_production_co2_per_video_hour_by_device_computer:.6f} kg/h
    - Smartphone : ({device_production_kg_co2e_smartphone:.2f} / {device_lifetime_hours_smartphone:.0f}) × {device_share_percent_smartphone:.1f} % = {device_production_co2_per_video_hour_by_device_smartphone:.6f} kg/h
    - Tablette : ({device_production_kg_co2e_tablet:.2f} / {device_lifetime_hours_tablet:.0f}) × {device_share_percent_tablet:.1f} % = {device_production_co2_per_video_hour_by_device_tablet:.6f} kg/h
    - TV : ({device_production_kg_co2e_tv:.2f} / {device_lifetime_hours_tv:.0f}) × {device_share_percent_tv:.1f} % = {device_production_co2_per_video_hour_by_device_tv:.6f} kg/h
    **Total production = {device_production_co2_per_video_hour_total:.6f} kg CO2e/h.**

  b. Électricité = part d’utilisation × (W / 1000) × CO2e par kWh :
    - Ordinateur : {device_share_percent_computer:.1f} % × ({device_watts_computer:.2f}/1000) = {device_energy_kwh_per_video_hour_by_device_computer:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_by_device_computer:.6f} kg/h
    - Smartphone : {device_share_percent_smartphone:.1f} % × ({device_watts_smartphone:.2f}/1000) = {device_energy_kwh_per_video_hour_by_device_smartphone:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_by_device_smartphone:.6f} kg/h
    - Tablette : {device_share_percent_tablet:.1f} % × ({device_watts_tablet:.2f}/1000) = {device_energy_kwh_per_video_hour_by_device_tablet:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_by_device_tablet:.6f} kg/h
    - TV : {device_share_percent_tv:.1f} % × ({device_watts_tv:.2f}/1000) = {device_energy_kwh_per_video_hour_by_device_tv:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_by_device_tv:.6f} kg/h
    **Total électricité = {device_energy_kwh_per_video_hour_total:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_total:.6f} kg CO2e/h.**

  **Total appareils = {device_production_co2_per_video_hour_total:.6f} + {device_energy_co2_per_video_hour_total:.6f} = {device_production_co2_per_video_hour_total_plus_energy:.6f} kg/h.**

2. Réseaux

  a. Part fixe/mobile déduite des réseaux de chaque appareil : {network_share_fixed:.1f} % fixe, {network_share_mobile:.1f} % mobile.
  b. Volume par réseau = Σ (Go/h de la résolution × part de la résolution) :
    - Fixe : {video_bitrate_GB_per_hour_480p:.2f}×{fixed_resolution_share_percent_480p:.0f} % + {video_bitrate_GB_per_hour_1080p:.2f}×{fixed_resolution_share_percent_1080p:.0f} % + {video_bitrate_GB_per_hour_2160p:.2f}×{fixed_resolution_share_percent_2160p:.0f} % = {gb_per_hour_fixed:.4f} Go/h
    - Mobile : {video_bitrate_GB_per_hour_480p:.2f}×{mobile_resolution_share_percent_480p:.0f} % + {video_bitrate_GB_per_hour_1080p:.2f}×{mobile_resolution_share_percent_1080p:.0f} % + {video_bitrate_GB_per_hour_2160p:.2f}×{mobile_resolution_share_percent_2160p:.0f} % = {gb_per_hour_mobile:.4f} Go/h
  c. Énergie kWh/h = a×Go/h + b, pondérée par la part du réseau :
    - Fixe : a={network_a_kwh_per_gb_fixed:.5f}, b={network_b_kwh_per_user_hour_fixed:.5f} ⇒ {network_kwh_per_video_hour_fixed:.6f} kWh/h
    - Mobile : a={network_a_kwh_per_gb_mobile:.5f}, b={network_b_kwh_per_user_hour_mobile:.5f} ⇒ {network_kwh_per_video_hour_mobile:.6f} kWh/h
  Total réseaux : {network_kwh_per_video_hour_total:.6f} kWh/h, soit **{network_co2_per_video_hour_total:.6f} kg CO2e/h** ({co2e_per_kWh:.4f} kg CO2e/kWh).

3. Centres de données (c×Go/h + d)
  a. c×Go/h = {datacenter_kg_co2e_per_GB:.6f}×{gb_per_hour_total_weighted:.4f} = {datacenter_co2_per_video_hour_transfer:.6f} kg/h
  b. d = {datacenter_kg_co2e_per_hour:.6f} kg/h
  c. Total = **{datacenter_co2_per_video_hour_total:.6f} kg/h**

Soit {kg_per_video_hour_total:.6f} kg CO2e/h au total.
**{hours_input:.2f} h/semaine × 52 semaines = {total_kg_co2e:,.2f} kg par an**, répartis ainsi :
  - Production des appareils : {production_co2_total:,.2f} kg
  - Électricité des appareils : {device_energy_co2_total:,.2f} kg
  - Réseaux : {network_co2_total:,.2f} kg
  - Centres de données : {datacenter_co2_total:,.2f} kg`,

	"language_label":                "Langue",
	"main_assumptions_header":       "Hypothèses principales",
	"secondary_assumptions_header":  "Hypothèses secondaires",
	"device_percent":                "Quels appareils utilisez-vous pour regarder des vidéos (part, en %) ?",
	"device_percent_computer":       "Ordinateur (portable ou fixe)",
	"device_percent_smartphone":     "Smartphone",
	"device_percent_tablet":         "Tablette",
	"device_percent_tv":             "TV",
	"device_percent_check":          "(NB : si le total est inférieur à 100 %, le pourcentage d’ordinateur est augmenté pour l’atteindre.)",
	"device_percent_error":          "Le pourcentage total est de {percent:.1f} %. Veuillez le ramener à 100 %.",
	"device_production_kg_co2e":     "Émissions dues à la fabrication des appareils (kg CO2e)",
	"device_production_kg_co2e_source": "https://datavizta.boavizta.org/terminalimpact (appareil moyen ; fortes disparités possibles, notamment pour les télévisions)",
	"device_production_kg_co2e_computer":   "Ordinateur (portable)",
	"device_production_kg_co2e_smartphone": "Smartphone",
	"device_production_kg_co2e_tablet":     "Tablette",
	"device_production_kg_co2e_tv":         "TV",
	"device_lifetime_hours":                "Durée de vie moyenne de chaque appareil (heures d’utilisation)",
	"device_lifetime_hours_source":         arcomStudy + " P73 à P78 " + arcomURL + "#page=73",
	"device_lifetime_hours_computer":       "Ordinateur (portable)",
	"device_lifetime_hours_smartphone":     "Smartphone",
	"device_lifetime_hours_tablet":         "Tablette",
	"device_lifetime_hours_tv":             "TV",
	"device_watts":                         "Consommation électrique moyenne pendant le visionnage (Wh/h)",
	"device_watts_source":                  arcomStudy + " P73 à P78 " + arcomURL + "#page=73",
	"device_watts_computer":                "Ordinateur (portable)",
	"device_watts_smartphone":              "Smartphone",
	"device_watts_tablet":                  "Tablette",
	"device_watts_tv":                      "TV",
	"video_bitrate_GB_per_hour":            "Débit moyen par résolution (Go / heure)",
	"video_bitrate_GB_per_hour_source":     "https://esimatic.com/blog/how-much-data-youtube-use (cohérent avec le débit HD ARCOM de 2,25 Go/h)",
	"video_bitrate_GB_per_hour_480p":       "480p",
	"video_bitrate_GB_per_hour_1080p":      "HD 1080p",
	"video_bitrate_GB_per_hour_2160p":      "4K 2160p",
	"network_kwh_per_gb":                   "Consommation énergétique des réseaux (kWh / Go)",
	"network_kwh_per_gb_source":            arcomStudy + " Tableau 23 P85 et tableau 25 P87. " + arcomURL + "#page=85",
	"network_kwh_per_gb_fixed":             "Réseau fixe (Wi-Fi ou éthernet)",
	"network_kwh_per_gb_mobile":            "Réseau mobile (4G/5G)",
	"network_kwh_per_user_per_hour":        "Consommation énergétique des réseaux par utilisateur et par heure (kWh)",
	"network_kwh_per_user_per_hour_source": arcomStudy + " Tableau 23 P85 et tableau 25 P86. " + arcomURL + "#page=85",
	"network_kwh_per_user_per_hour_fixed":  "Réseau fixe (Wi-Fi ou éthernet)",
	"network_kwh_per_user_per_hour_mobile": "Réseau mobile (4G/5G)",
	"fixed_network_percent":                "Part d’utilisation du réseau fixe selon l’appareil (%)",
	"fixed_network_percent_source":         arcomStudy + " P110 " + arcomURL + "#page=110",
	"fixed_network_percent_computer":       "Ordinateur (portable)",
	"fixed_network_percent_smartphone":     "Smartphone",
	"fixed_network_percent_tablet":         "Tablette",
	"fixed_network_percent_tv":             "TV",
	"fixed_network_resolution_percent":        "Répartition des résolutions sur réseau fixe (%)",
	"fixed_network_resolution_percent_source": arcomStudy + " Tableau 45 P112 " + arcomURL + "#page=112",
	"fixed_network_resolution_percent_480p":   "480p",
	"fixed_network_resolution_percent_1080p":  "HD 1080p",
	"fixed_network_resolution_percent_2160p":  "4K 2160p",
	"fixed_network_resolution_percent_check":  "(NB : si la somme est inférieure à 100 %, la part en 1080p est augmentée pour l’atteindre.)",
	"fixed_network_resolution_percent_error":  "La somme des parts est de {percent:.1f} %. Veuillez la ramener à 100 %.",
	"mobile_network_resolution_percent":        "Répartition des résolutions sur réseau mobile (%)",
	"mobile_network_resolution_percent_source": arcomStudy + " Tableau 45 P112 " + arcomURL + "#page=112",
	"mobile_network_resolution_percent_480p":   "480p",
	"mobile_network_resolution_percent_1080p":  "HD 1080p",
	"mobile_network_resolution_percent_2160p":  "4K 2160p",
	"mobile_network_resolution_percent_check":  "(NB : si la somme est inférieure à 100 %, la part en 1080p est augmentée pour l’atteindre.)",
	"mobile_network_resolution_percent_error":  "La somme des parts est de {percent:.1f} %. Veuillez la ramener à 100 %.",
	"co2e_per_kWh":                  "Émissions de CO2e par kWh d’électricité (kg CO2e / kWh)",
	"co2e_per_kWh_source":           "https://ourworldindata.org/grapher/carbon-intensity-electricity?tab=chart&country=FRA",
	"datacenter_kg_co2e":            "Émissions des centres de données",
	"datacenter_kg_co2e_source":     arcomStudy + " Tableau 38 P102, tableaux 56 et 57 P130. " + arcomURL + "#page=102",
	"datacenter_kg_co2e_per_GB":     "par Go transféré (kg CO2e / Go)",
	"datacenter_kg_co2e_per_hour":   "par heure de vidéo visionnée (kg CO2e / heure)",
	"hours_input":                   "Heures de visionnage par semaine",
	"co2e_offsetting":               "Compensations",
	"co2e_offsetting_source":        "https://impactco2.fr/outils/comparateur",
	"co2e_offsetting_electric_vs_thermic_vehicle":  "CO2e évité par km en voiture électrique plutôt que thermique (kg CO2e / km)",
	"co2e_offsetting_no_meat_meal_vs_chicken_meal": "CO2e évité par repas végétarien plutôt qu’avec du poulet (kg CO2e / repas)",
	"co2e_offsetting_title":                        "Exemples d’actions qui compenseraient ces émissions...",
	"offsetting_table_usage_only":                  "sans le CO2 de production",
	"offsetting_table_with_production":             "avec le CO2 de production",
	"electric_vs_thermic_vehicle_display":          "Conduire {x} km en voiture électrique plutôt que thermique.",
	"no_meat_meal_vs_chicken_meal_display":         "Remplacer {x} repas avec poulet par un repas végétarien.",

	"col_field":        "Champ",
	"col_value":        "Valeur",
	"col_category":     "Catégorie",
	"col_kg_per_year":  "kg CO2e / an",
	"col_file":         "Fichier",
	"cat_production":   "Production des appareils",
	"cat_device":       "Électricité des appareils",
	"cat_network":      "Réseaux",
	"cat_datacenter":   "Centres de données",
	"total_usage_only": "Total (usage seul)",
	"total_with_prod":  "Total (avec production)",
	"role_label":       "Rôle",
	"edit_help":        "↑/↓ naviguer • entrée modifier • r rôle • l langue • q quitter",
	"edit_help_input":  "entrée valider • échap annuler",
	"edit_invalid":     "Valeur invalide",
}
