package core

// messages is the portal's UI catalog. A missing nl/en entry falls back to fr.
var messages = map[string]map[Locale]string{
	"app.title": {LocaleFR: "Copropriété Delphinium", LocaleNL: "Mede-eigendom Delphinium", LocaleEN: "Delphinium Condominium"},

	// navigation
	"nav.newsgroup":      {LocaleFR: "Newsgroup", LocaleNL: "Nieuwsgroep", LocaleEN: "Newsgroup"},
	"nav.blog":           {LocaleFR: "Blog", LocaleNL: "Blog", LocaleEN: "Blog"},
	"nav.calendar":       {LocaleFR: "Calendrier", LocaleNL: "Kalender", LocaleEN: "Calendar"},
	"nav.access-request": {LocaleFR: "Demande d'accès", LocaleNL: "Toegangsaanvraag", LocaleEN: "Access request"},
	"nav.incidents":      {LocaleFR: "Gestion d'incidents", LocaleNL: "Incidentbeheer", LocaleEN: "Incident management"},
	"nav.documentation":  {LocaleFR: "Documentation", LocaleNL: "Documentatie", LocaleEN: "Documentation"},
	"nav.logout":         {LocaleFR: "Déconnexion", LocaleNL: "Afmelden", LocaleEN: "Log out"},
	"nav.language":       {LocaleFR: "Langue", LocaleNL: "Taal", LocaleEN: "Language"},

	// login
	"login.title":      {LocaleFR: "Connexion", LocaleNL: "Aanmelden", LocaleEN: "Sign in"},
	"login.userid":     {LocaleFR: "Identifiant", LocaleNL: "Gebruikersnaam", LocaleEN: "User ID"},
	"login.password":   {LocaleFR: "Mot de passe", LocaleNL: "Wachtwoord", LocaleEN: "Password"},
	"login.submit":     {LocaleFR: "Se connecter", LocaleNL: "Aanmelden", LocaleEN: "Sign in"},
	"login.invalid":    {LocaleFR: "Identifiants incorrects", LocaleNL: "Ongeldige inloggegevens", LocaleEN: "Invalid credentials"},
	"login.connection": {LocaleFR: "Erreur de connexion", LocaleNL: "Verbindingsfout", LocaleEN: "Connection error"},
	"login.request":    {LocaleFR: "Pas encore de compte ? Demander un accès", LocaleNL: "Nog geen account? Toegang aanvragen", LocaleEN: "No account yet? Request access"},

	// shared
	"denied.title":   {LocaleFR: "Accès refusé", LocaleNL: "Toegang geweigerd", LocaleEN: "Access denied"},
	"list.loading":   {LocaleFR: "Chargement...", LocaleNL: "Laden...", LocaleEN: "Loading..."},
	"list.empty":     {LocaleFR: "Aucun élément pour le moment", LocaleNL: "Nog geen items", LocaleEN: "Nothing here yet"},
	"list.failed":    {LocaleFR: "Impossible de charger les données", LocaleNL: "Gegevens konden niet worden geladen", LocaleEN: "Could not load data"},
	"action.failed":  {LocaleFR: "L'opération a échoué", LocaleNL: "De bewerking is mislukt", LocaleEN: "The operation failed"},
	"common.by":      {LocaleFR: "Publié par", LocaleNL: "Geplaatst door", LocaleEN: "Posted by"},
	"common.create":  {LocaleFR: "Créer", LocaleNL: "Aanmaken", LocaleEN: "Create"},
	"common.send":    {LocaleFR: "Envoyer", LocaleNL: "Verzenden", LocaleEN: "Send"},
	"common.update":  {LocaleFR: "Mettre à jour", LocaleNL: "Bijwerken", LocaleEN: "Update"},
	"common.search":  {LocaleFR: "Rechercher", LocaleNL: "Zoeken", LocaleEN: "Search"},
	"error.generic":  {LocaleFR: "Une erreur est survenue", LocaleNL: "Er is een fout opgetreden", LocaleEN: "Something went wrong"},
	"error.notfound": {LocaleFR: "Page introuvable", LocaleNL: "Pagina niet gevonden", LocaleEN: "Page not found"},
	"error.title":    {LocaleFR: "Erreur", LocaleNL: "Fout", LocaleEN: "Error"},
	"error.invalid":  {LocaleFR: "Certains champs sont invalides", LocaleNL: "Sommige velden zijn ongeldig", LocaleEN: "Some fields are invalid"},
	"denied.body":    {LocaleFR: "Cette section est réservée aux administrateurs.", LocaleNL: "Deze sectie is voorbehouden aan beheerders.", LocaleEN: "This section is reserved for administrators."},

	// fields
	"field.title":           {LocaleFR: "Titre", LocaleNL: "Titel", LocaleEN: "Title"},
	"field.content":         {LocaleFR: "Contenu", LocaleNL: "Inhoud", LocaleEN: "Content"},
	"field.description":     {LocaleFR: "Description", LocaleNL: "Beschrijving", LocaleEN: "Description"},
	"field.priority":        {LocaleFR: "Priorité", LocaleNL: "Prioriteit", LocaleEN: "Priority"},
	"field.status":          {LocaleFR: "Statut", LocaleNL: "Status", LocaleEN: "Status"},
	"field.date":            {LocaleFR: "Date", LocaleNL: "Datum", LocaleEN: "Date"},
	"field.actions":         {LocaleFR: "Actions", LocaleNL: "Acties", LocaleEN: "Actions"},
	"field.name":            {LocaleFR: "Nom", LocaleNL: "Naam", LocaleEN: "Name"},
	"field.category":        {LocaleFR: "Catégorie", LocaleNL: "Categorie", LocaleEN: "Category"},
	"field.file":            {LocaleFR: "Fichier", LocaleNL: "Bestand", LocaleEN: "File"},
	"field.firstName":       {LocaleFR: "Prénom", LocaleNL: "Voornaam", LocaleEN: "First name"},
	"field.lastName":        {LocaleFR: "Nom", LocaleNL: "Achternaam", LocaleEN: "Last name"},
	"field.email":           {LocaleFR: "Email", LocaleNL: "E-mail", LocaleEN: "Email"},
	"field.userType":        {LocaleFR: "Type de demandeur", LocaleNL: "Type aanvrager", LocaleEN: "Applicant type"},
	"field.companyName":     {LocaleFR: "Nom de la société", LocaleNL: "Bedrijfsnaam", LocaleEN: "Company name"},
	"field.phone":           {LocaleFR: "Téléphone", LocaleNL: "Telefoon", LocaleEN: "Phone"},
	"field.address":         {LocaleFR: "Adresse", LocaleNL: "Adres", LocaleEN: "Address"},
	"field.apartmentNumber": {LocaleFR: "Numéro d'appartement", LocaleNL: "Appartementnummer", LocaleEN: "Apartment number"},
	"field.reason":          {LocaleFR: "Raison de la demande", LocaleNL: "Reden van de aanvraag", LocaleEN: "Reason for the request"},
	"field.required":        {LocaleFR: "ce champ est obligatoire", LocaleNL: "dit veld is verplicht", LocaleEN: "this field is required"},
	"field.message":         {LocaleFR: "Message additionnel", LocaleNL: "Extra bericht", LocaleEN: "Additional message"},

	// newsgroup
	"newsgroup.new":     {LocaleFR: "Nouveau sujet", LocaleNL: "Nieuw onderwerp", LocaleEN: "New thread"},
	"newsgroup.reply":   {LocaleFR: "Répondre", LocaleNL: "Antwoorden", LocaleEN: "Reply"},
	"newsgroup.replies": {LocaleFR: "Réponses", LocaleNL: "Antwoorden", LocaleEN: "Replies"},
	"newsgroup.recent":  {LocaleFR: "Discussions récentes", LocaleNL: "Recente discussies", LocaleEN: "Recent discussions"},

	// blog
	"blog.title":    {LocaleFR: "Blog - Actualités", LocaleNL: "Blog - Nieuws", LocaleEN: "Blog - News"},
	"blog.readMore": {LocaleFR: "Lire la suite", LocaleNL: "Lees meer", LocaleEN: "Read more"},
	"blog.subtitle": {LocaleFR: "Les dernières nouvelles de la copropriété Delphinium", LocaleNL: "Het laatste nieuws van mede-eigendom Delphinium", LocaleEN: "The latest news from the Delphinium condominium"},

	// calendar
	"calendar.today":    {LocaleFR: "Aujourd'hui", LocaleNL: "Vandaag", LocaleEN: "Today"},
	"calendar.events":   {LocaleFR: "Événements du mois", LocaleNL: "Evenementen van de maand", LocaleEN: "Events this month"},
	"calendar.none":     {LocaleFR: "Aucun événement ce mois-ci", LocaleNL: "Geen evenementen deze maand", LocaleEN: "No events this month"},
	"calendar.prev":     {LocaleFR: "Mois précédent", LocaleNL: "Vorige maand", LocaleEN: "Previous month"},
	"calendar.next":     {LocaleFR: "Mois suivant", LocaleNL: "Volgende maand", LocaleEN: "Next month"},
	"calendar.month.1":  {LocaleFR: "Janvier", LocaleNL: "Januari", LocaleEN: "January"},
	"calendar.month.2":  {LocaleFR: "Février", LocaleNL: "Februari", LocaleEN: "February"},
	"calendar.month.3":  {LocaleFR: "Mars", LocaleNL: "Maart", LocaleEN: "March"},
	"calendar.month.4":  {LocaleFR: "Avril", LocaleNL: "April", LocaleEN: "April"},
	"calendar.month.5":  {LocaleFR: "Mai", LocaleNL: "Mei", LocaleEN: "May"},
	"calendar.month.6":  {LocaleFR: "Juin", LocaleNL: "Juni", LocaleEN: "June"},
	"calendar.month.7":  {LocaleFR: "Juillet", LocaleNL: "Juli", LocaleEN: "July"},
	"calendar.month.8":  {LocaleFR: "Août", LocaleNL: "Augustus", LocaleEN: "August"},
	"calendar.month.9":  {LocaleFR: "Septembre", LocaleNL: "September", LocaleEN: "September"},
	"calendar.month.10": {LocaleFR: "Octobre", LocaleNL: "Oktober", LocaleEN: "October"},
	"calendar.month.11": {LocaleFR: "Novembre", LocaleNL: "November", LocaleEN: "November"},
	"calendar.month.12": {LocaleFR: "Décembre", LocaleNL: "December", LocaleEN: "December"},
	"calendar.day.0":    {LocaleFR: "Dim", LocaleNL: "Zo", LocaleEN: "Sun"},
	"calendar.day.1":    {LocaleFR: "Lun", LocaleNL: "Ma", LocaleEN: "Mon"},
	"calendar.day.2":    {LocaleFR: "Mar", LocaleNL: "Di", LocaleEN: "Tue"},
	"calendar.day.3":    {LocaleFR: "Mer", LocaleNL: "Wo", LocaleEN: "Wed"},
	"calendar.day.4":    {LocaleFR: "Jeu", LocaleNL: "Do", LocaleEN: "Thu"},
	"calendar.day.5":    {LocaleFR: "Ven", LocaleNL: "Vr", LocaleEN: "Fri"},
	"calendar.day.6":    {LocaleFR: "Sam", LocaleNL: "Za", LocaleEN: "Sat"},

	// incidents
	"incidents.subtitle":    {LocaleFR: "Section réservée aux administrateurs", LocaleNL: "Enkel voor beheerders", LocaleEN: "Administrators only"},
	"incidents.new":         {LocaleFR: "Créer un nouvel incident", LocaleNL: "Nieuw incident aanmaken", LocaleEN: "Create a new incident"},
	"priority.low":          {LocaleFR: "Basse", LocaleNL: "Laag", LocaleEN: "Low"},
	"priority.medium":       {LocaleFR: "Moyenne", LocaleNL: "Gemiddeld", LocaleEN: "Medium"},
	"priority.high":         {LocaleFR: "Haute", LocaleNL: "Hoog", LocaleEN: "High"},
	"status.open":           {LocaleFR: "Ouvert", LocaleNL: "Open", LocaleEN: "Open"},
	"status.in_progress":    {LocaleFR: "En cours", LocaleNL: "In behandeling", LocaleEN: "In progress"},
	"status.resolved":       {LocaleFR: "Résolu", LocaleNL: "Opgelost", LocaleEN: "Resolved"},
	"docs.subtitle":         {LocaleFR: "Documents relatifs à la copropriété", LocaleNL: "Documenten over het mede-eigendom", LocaleEN: "Condominium documents"},
	"docs.upload":           {LocaleFR: "Upload", LocaleNL: "Uploaden", LocaleEN: "Upload"},
	"docs.uncategorized":    {LocaleFR: "Sans catégorie", LocaleNL: "Zonder categorie", LocaleEN: "Uncategorized"},
	"docs.added":            {LocaleFR: "Ajouté le", LocaleNL: "Toegevoegd op", LocaleEN: "Added on"},
	"docs.download":         {LocaleFR: "Télécharger", LocaleNL: "Downloaden", LocaleEN: "Download"},
	"docs.search":           {LocaleFR: "Rechercher un document", LocaleNL: "Een document zoeken", LocaleEN: "Search a document"},
	"access.subtitle":       {LocaleFR: "Remplissez ce formulaire pour demander un accès au site de la copropriété Delphinium", LocaleNL: "Vul dit formulier in om toegang te vragen tot de site van mede-eigendom Delphinium", LocaleEN: "Fill in this form to request access to the Delphinium condominium site"},
	"access.step.0":         {LocaleFR: "Informations personnelles", LocaleNL: "Persoonlijke gegevens", LocaleEN: "Personal information"},
	"access.step.1":         {LocaleFR: "Coordonnées", LocaleNL: "Contactgegevens", LocaleEN: "Contact details"},
	"access.step.2":         {LocaleFR: "Confirmation", LocaleNL: "Bevestiging", LocaleEN: "Confirmation"},
	"access.resident":       {LocaleFR: "Résident", LocaleNL: "Bewoner", LocaleEN: "Resident"},
	"access.service":        {LocaleFR: "Société de service", LocaleNL: "Dienstverlener", LocaleEN: "Service company"},
	"access.review":         {LocaleFR: "Veuillez vérifier vos informations avant de soumettre votre demande.", LocaleNL: "Controleer uw gegevens voordat u uw aanvraag indient.", LocaleEN: "Please review your information before submitting your request."},
	"access.summary":        {LocaleFR: "Récapitulatif", LocaleNL: "Overzicht", LocaleEN: "Summary"},
	"access.fullName":       {LocaleFR: "Nom complet", LocaleNL: "Volledige naam", LocaleEN: "Full name"},
	"access.back":           {LocaleFR: "Retour", LocaleNL: "Terug", LocaleEN: "Back"},
	"access.next":           {LocaleFR: "Suivant", LocaleNL: "Volgende", LocaleEN: "Next"},
	"access.submit":         {LocaleFR: "Soumettre", LocaleNL: "Indienen", LocaleEN: "Submit"},
	"access.sent.title":     {LocaleFR: "Demande envoyée", LocaleNL: "Aanvraag verzonden", LocaleEN: "Request sent"},
	"access.sent.body":      {LocaleFR: "Votre demande d'accès a été soumise avec succès.", LocaleNL: "Uw toegangsaanvraag is succesvol ingediend.", LocaleEN: "Your access request was submitted successfully."},
	"access.sent.followup":  {LocaleFR: "Un administrateur examinera votre demande et vous contactera sous 2-3 jours ouvrables.", LocaleNL: "Een beheerder bekijkt uw aanvraag en neemt binnen 2-3 werkdagen contact met u op.", LocaleEN: "An administrator will review your request and contact you within 2-3 business days."},
	"access.failed":         {LocaleFR: "La demande n'a pas pu être envoyée", LocaleNL: "De aanvraag kon niet worden verzonden", LocaleEN: "The request could not be sent"},
	"access.stepIncomplete": {LocaleFR: "Veuillez compléter les champs obligatoires", LocaleNL: "Vul de verplichte velden in", LocaleEN: "Please fill in the required fields"},
}
