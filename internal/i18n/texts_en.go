package i18n

const arcomStudyEN = "Arcom, 2024. Study of the environmental impact of audiovisual uses in France."

//nolint:gochecknoglobals // Read-only text catalog.
var textsEN = map[string]string{
	"page_title":                       "CO2 impact calculator for watching online video",
	"producer":                         "I make videos",
	"consumer":                         "I watch videos",
	"producer_help":                    "How many hours was your channel watched over the last seven days (YouTube Studio -> Analytics -> Overview, \"Last 7 days\")?",
	"consumer_help":                    "How many hours of video do you watch per week?",
	"consumer_weekly_hours":            "Hours / week",
	"producer_watch_hours":             "Watch hours (last 7 days)",
	"compute_button":                   "Compute",
	"result_total_kg":                  "Emissions",
	"result_total_kg_year":             "Emissions",
	"unit_per_year":                    "kg CO2e per year",
	"result_with_production_prefix":    "Including the CO2e emitted to manufacture the devices used to watch (smartphone, computer, tablet, TV...), this amounts to:",
	"result_without_production_prefix": "Leaving out the CO2e emitted to manufacture the devices, this amounts to:",
	"result_explanation": `Explanation: most of the CO2 is emitted when manufacturing the devices used to watch videos. If you are after the **marginal** carbon impact of watching video, only consider the second figure.

These estimates use typical data for a viewer located in France. The most important parameters:

  - Keeping devices longer lowers the impact. Following ARCOM, a smartphone is replaced on average after 2.5 years at 3.9 h of use per day.
  - The fixed network (ethernet or Wi-Fi) uses up to 20 times less energy per GB than the mobile network (4G/5G).
  - Video resolution matters a lot; it is usually lower on smartphones than on computers.
  - The figures assume low-carbon electricity, as in France. From another country the result can be very different.

Every parameter can be changed (greenstream edit, or --set).`,
	"details_subheader":           "How were these figures obtained?",
	"even_more_details_subheader": "Even more details",
	"details_text": `Total CO2 splits into three parts:

1. The devices used to watch, both while being manufactured and while in use.
2. The networks carrying the video (fixed or mobile), with a part proportional to data volume and a fixed part per user and hour.
3. The datacenters, with a part proportional to GB transferred and a part per hour watched.

For the current values:

1. Devices = production per hour + electricity per hour = {device_production_co2_per_video_hour_total:.4f} + {device_energy_co2_per_video_hour_total:.4f} = **{device_production_co2_per_video_hour_total_plus_energy:.4f} kg CO2e/h**.

2. Networks, assuming:
  - fixed network {network_share_fixed:.1f}% of the time, mobile network {network_share_mobile:.1f}% of the time;
  - on fixed: 480p {fixed_network_resolution_percent_480p:.0f}%, 1080p {fixed_network_resolution_percent_1080p:.0f}%, 4K {fixed_network_resolution_percent_2160p:.0f}%;
  - on mobile: 480p {mobile_network_resolution_percent_480p:.0f}%, 1080p {mobile_network_resolution_percent_1080p:.0f}%, 4K {mobile_network_resolution_percent_2160p:.0f}%.
  Average data rate fixed {gb_per_hour_fixed:.2f} GB/h, mobile {gb_per_hour_mobile:.2f} GB/h; energy fixed {network_kwh_per_video_hour_fixed:.4f} kWh/h, mobile {network_kwh_per_video_hour_mobile:.4f} kWh/h.
  → **Total {network_kwh_per_video_hour_total:.4f} kWh/h**, i.e. **{network_co2_per_video_hour_total:.4f} kg CO2e/h**.

3. Datacenters, for {gb_per_hour_total_weighted:.2f} GB/h on average: {datacenter_co2_per_video_hour_transfer:.4f} kg CO2e/h for storage + {datacenter_co2_per_video_hour_runtime:.4f} kg/h for playback = **{datacenter_co2_per_video_hour_total:.4f} kg/h**.

One hour of video therefore emits {kg_per_video_hour_total:.4f} kg CO2e. Times {hours_input:,.2f} h/week and 52 weeks: **{total_kg_co2e:,.2f} kg CO2e/year**.`,
	"even_more_details_text": `1. Devices (production + electricity)

  a. Production per hour = (manufacturing CO2 / lifetime in hours) × usage share:
    - Computer: ({device_production_kg_co2e_computer:.2f} / {device_lifetime_hours_computer:.0f}) × {device_share_percent_computer:.1f}% = {device_production_co2_per_video_hour_by_device_computer:.6f} kg/h
    - Smartphone: ({device_production_kg_co2e_smartphone:.2f} / {device_lifetime_hours_smartphone:.0f}) × {device_share_percent_smartphone:.1f}% = {device_production_co2_per_video_hour_by_device_smartphone:.6f} kg/h
    - Tablet: ({device_production_kg_co2e_tablet:.2f} / {device_lifetime_hours_tablet:.0f}) × {device_share_percent_tablet:.1f}% = {device_production_co2_per_video_hour_by_device_tablet:.6f} kg/h
    - TV: ({device_production_kg_co2e_tv:.2f} / {device_lifetime_hours_tv:.0f}) × {device_share_percent_tv:.1f}% = {device_production_co2_per_video_hour_by_device_tv:.6f} kg/h
    **Total production = {device_production_co2_per_video_hour_total:.6f} kg CO2e/h.**

  b. Electricity = usage share × (W / 1000) × CO2e per kWh:
    - Computer: {device_share_percent_computer:.1f}% × ({device_watts_computer:.2f}/1000) = {device_energy_kwh_per_video_hour_by_device_computer:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_by_device_computer:.6f} kg/h
    - Smartphone: {device_share_percent_smartphone:.1f}% × ({device_watts_smartphone:.2f}/1000) = {device_energy_kwh_per_video_hour_by_device_smartphone:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_by_device_smartphone:.6f} kg/h
    - Tablet: {device_share_percent_tablet:.1f}% × ({device_watts_tablet:.2f}/1000) = {device_energy_kwh_per_video_hour_by_device_tablet:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_by_device_tablet:.6f} kg/h
    - TV: {device_share_percent_tv:.1f}% × ({device_watts_tv:.2f}/1000) = {device_energy_kwh_per_video_hour_by_device_tv:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_by_device_tv:.6f} kg/h
    **Total electricity = {device_energy_kwh_per_video_hour_total:.6f} kWh/h ⇒ {device_energy_co2_per_video_hour_total:.6f} kg CO2e/h.**

  **Total devices = {device_production_co2_per_video_hour_total:.6f} + {device_energy_co2_per_video_hour_total:.6f} = {device_production_co2_per_video_hour_total_plus_energy:.6f} kg/h.**

2. Networks

  a. Fixed/mobile split derived from each device's networks: {network_share_fixed:.1f}% fixed, {network_share_mobile:.1f}% mobile.
  b. Volume per network = Σ (GB/h of the resolution × resolution share):
    - Fixed: {video_bitrate_GB_per_hour_480p:.2f}×{fixed_resolution_share_percent_480p:.0f}% + {video_bitrate_GB_per_hour_1080p:.2f}×{fixed_resolution_share_percent_1080p:.0f}% + {video_bitrate_GB_per_hour_2160p:.2f}×{fixed_resolution_share_percent_2160p:.0f}% = {gb_per_hour_fixed:.4f} GB/h
    - Mobile: {video_bitrate_GB_per_hour_480p:.2f}×{mobile_resolution_share_percent_480p:.0f}% + {video_bitrate_GB_per_hour_1080p:.2f}×{mobile_resolution_share_percent_1080p:.0f}% + {video_bitrate_GB_per_hour_2160p:.2f}×{mobile_resolution_share_percent_2160p:.0f}% = {gb_per_hour_mobile:.4f} GB/h
  c. Energy kWh/h = a×GB/h + b, weighted by the network share:
    - Fixed: a={network_a_kwh_per_gb_fixed:.5f}, b={network_b_kwh_per_user_hour_fixed:.5f} ⇒ {network_kwh_per_video_hour_fixed:.6f} kWh/h
    - Mobile: a={network_a_kwh_per_gb_mobile:.5f}, b={network_b_kwh_per_user_hour_mobile:.5f} ⇒ {network_kwh_per_video_hour_mobile:.6f} kWh/h
  Networks total: {network_kwh_per_video_hour_total:.6f} kWh/h, i.e. **{network_co2_per_video_hour_total:.6f} kg CO2e/h** ({co2e_per_kWh:.4f} kg CO2e/kWh).

3. Datacenters (c×GB/h + d)
  a. c×GB/h = {datacenter_kg_co2e_per_GB:.6f}×{gb_per_hour_total_weighted:.4f} = {datacenter_co2_per_video_hour_transfer:.6f} kg/h
  b. d = {datacenter_kg_co2e_per_hour:.6f} kg/h
  c. Total = **{datacenter_co2_per_video_hour_total:.6f} kg/h**

That is {kg_per_video_hour_total:.6f} kg CO2e/h in total.
**{hours_input:.2f} h/week × 52 weeks = {total_kg_co2e:,.2f} kg per year**, split as:
  - Device production: {production_co2_total:,.2f} kg
  - Device electricity: {device_energy_co2_total:,.2f} kg
  - Networks: {network_co2_total:,.2f} kg
  - Datacenters: {datacenter_co2_total:,.2f} kg`,

	"language_label":                        "Language",
	"main_assumptions_header":               "Main assumptions",
	"secondary_assumptions_header":          "Secondary assumptions",
	"device_percent":                        "Which devices do you watch videos on (share, %)?",
	"device_percent_computer":               "Computer (laptop or desktop)",
	"device_percent_smartphone":             "Smartphone",
	"device_percent_tablet":                 "Tablet",
	"device_percent_tv":                     "TV",
	"device_percent_check":                  "(Note: if the total is below 100%, the computer share is raised to reach it.)",
	"device_percent_error":                  "The total is {percent:.1f}%. Please bring it back to 100%.",
	"device_production_kg_co2e":             "Emissions from manufacturing the devices (kg CO2e)",
	"device_production_kg_co2e_source":      "https://datavizta.boavizta.org/terminalimpact (average device; large differences exist, especially for TVs)",
	"device_production_kg_co2e_computer":    "Computer (laptop)",
	"device_production_kg_co2e_smartphone":  "Smartphone",
	"device_production_kg_co2e_tablet":      "Tablet",
	"device_production_kg_co2e_tv":          "TV",
	"device_lifetime_hours":                 "Average device lifetime (hours of use)",
	"device_lifetime_hours_source":          arcomStudyEN + " P73-P78 " + arcomURL + "#page=73",
	"device_lifetime_hours_computer":        "Computer (laptop)",
	"device_lifetime_hours_smartphone":      "Smartphone",
	"device_lifetime_hours_tablet":          "Tablet",
	"device_lifetime_hours_tv":              "TV",
	"device_watts":                          "Average power draw while playing video (Wh/h)",
	"device_watts_source":                   arcomStudyEN + " P73-P78 " + arcomURL + "#page=73",
	"device_watts_computer":                 "Computer (laptop)",
	"device_watts_smartphone":               "Smartphone",
	"device_watts_tablet":                   "Tablet",
	"device_watts_tv":                       "TV",
	"video_bitrate_GB_per_hour":             "Average bitrate per resolution (GB / hour)",
	"video_bitrate_GB_per_hour_source":      "https://esimatic.com/blog/how-much-data-youtube-use (consistent with the ARCOM HD rate of 2.25 GB/h)",
	"video_bitrate_GB_per_hour_480p":        "480p",
	"video_bitrate_GB_per_hour_1080p":       "HD 1080p",
	"video_bitrate_GB_per_hour_2160p":       "4K 2160p",
	"network_kwh_per_gb":                    "Network energy use (kWh / GB)",
	"network_kwh_per_gb_source":             arcomStudyEN + " Table 23 P85 and table 25 P87. " + arcomURL + "#page=85",
	"network_kwh_per_gb_fixed":              "Fixed network (Wi-Fi or ethernet)",
	"network_kwh_per_gb_mobile":             "Mobile network (4G/5G)",
	"network_kwh_per_user_per_hour":         "Network energy use per user and hour (kWh)",
	"network_kwh_per_user_per_hour_source":  arcomStudyEN + " Table 23 P85 and table 25 P86. " + arcomURL + "#page=85",
	"network_kwh_per_user_per_hour_fixed":   "Fixed network (Wi-Fi or ethernet)",
	"network_kwh_per_user_per_hour_mobile":  "Mobile network (4G/5G)",
	"fixed_network_percent":                 "Share of fixed network use per device (%)",
	"fixed_network_percent_source":          arcomStudyEN + " P110 " + arcomURL + "#page=110",
	"fixed_network_percent_computer":        "Computer (laptop)",
	"fixed_network_percent_smartphone":      "Smartphone",
	"fixed_network_percent_tablet":          "Tablet",
	"fixed_network_percent_tv":              "TV",
	"fixed_network_resolution_percent":      "Resolution mix on the fixed network (%)",
	"fixed_network_resolution_percent_source": arcomStudyEN + " Table 45 P112 " + arcomURL + "#page=112",
	"fixed_network_resolution_percent_480p":   "480p",
	"fixed_network_resolution_percent_1080p":  "HD 1080p",
	"fixed_network_resolution_percent_2160p":  "4K 2160p",
	"fixed_network_resolution_percent_check":  "(Note: if the sum is below 100%, the 1080p share is raised to reach it.)",
	"fixed_network_resolution_percent_error":  "The shares add up to {percent:.1f}%. Please bring them back to 100%.",
	"mobile_network_resolution_percent":        "Resolution mix on the mobile network (%)",
	"mobile_network_resolution_percent_source": arcomStudyEN + " Table 45 P112 " + arcomURL + "#page=112",
	"mobile_network_resolution_percent_480p":   "480p",
	"mobile_network_resolution_percent_1080p":  "HD 1080p",
	"mobile_network_resolution_percent_2160p":  "4K 2160p",
	"mobile_network_resolution_percent_check":  "(Note: if the sum is below 100%, the 1080p share is raised to reach it.)",
	"mobile_network_resolution_percent_error":  "The shares add up to {percent:.1f}%. Please bring them back to 100%.",
	"co2e_per_kWh":                                 "CO2e emitted per kWh of electricity (kg CO2e / kWh)",
	"co2e_per_kWh_source":                          "https://ourworldindata.org/grapher/carbon-intensity-electricity?tab=chart&country=FRA",
	"datacenter_kg_co2e":                           "Datacenter emissions",
	"datacenter_kg_co2e_source":                    arcomStudyEN + " Table 38 P102, tables 56 and 57 P130. " + arcomURL + "#page=102",
	"datacenter_kg_co2e_per_GB":                    "per GB transferred (kg CO2e / GB)",
	"datacenter_kg_co2e_per_hour":                  "per hour of video watched (kg CO2e / hour)",
	"hours_input":                                  "Viewing hours per week",
	"co2e_offsetting":                              "Offsetting",
	"co2e_offsetting_source":                       "https://impactco2.fr/outils/comparateur",
	"co2e_offsetting_electric_vs_thermic_vehicle":  "CO2e avoided per km driven electric instead of combustion (kg CO2e / km)",
	"co2e_offsetting_no_meat_meal_vs_chicken_meal": "CO2e avoided per vegetarian meal instead of chicken (kg CO2e / meal)",
	"co2e_offsetting_title":                        "Examples of actions that would offset these emissions...",
	"offsetting_table_usage_only":                  "without production CO2",
	"offsetting_table_with_production":             "with production CO2",
	"electric_vs_thermic_vehicle_display":          "Drive {x} km in an electric car instead of a combustion one.",
	"no_meat_meal_vs_chicken_meal_display":         "Replace {x} chicken meals with a vegetarian meal.",

	"col_field":        "Field",
	"col_value":        "Value",
	"col_category":     "Category",
	"col_kg_per_year":  "kg CO2e / year",
	"col_file":         "File",
	"cat_production":   "Device production",
	"cat_device":       "Device electricity",
	"cat_network":      "Networks",
	"cat_datacenter":   "Datacenters",
	"total_usage_only": "Total (usage only)",
	"total_with_prod":  "Total (with production)",
	"role_label":       "Role",
	"edit_help":        "↑/↓ navigate • enter edit • r role • l language • q quit",
	"edit_help_input":  "enter confirm • esc cancel",
	"edit_invalid":     "Invalid value",
}
